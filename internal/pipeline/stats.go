package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total      int
	Renamed    int // includes dry-run "would rename"
	Unchanged  int
	Skipped    int // unparsable or not an episode
	Failed     int
	TotalBytes int64 // size of the files renamed
}

// Processed returns the number of items that reached a decision.
func (s *RunStats) Processed() int {
	return s.Renamed + s.Unchanged + s.Skipped + s.Failed
}
