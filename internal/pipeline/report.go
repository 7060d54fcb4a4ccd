package pipeline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/backmassage/namewright/internal/config"
	"github.com/backmassage/namewright/internal/display"
	"github.com/backmassage/namewright/internal/parser"
)

// scanRow is one CSV/table row of a scan report.
type scanRow struct {
	Input    string `csv:"input"`
	Series   string `csv:"series"`
	Season   string `csv:"season"`
	Episodes string `csv:"episodes"`
	Absolute string `csv:"absolute"`
	AirDate  string `csv:"air_date"`
	Quality  string `csv:"quality"`
	Group    string `csv:"release_group"`
	Rule     string `csv:"rule"`
	Size     int64  `csv:"size"`
	Error    string `csv:"error"`
}

func newScanRow(it Item) scanRow {
	row := scanRow{Input: it.Input, Size: it.Size}
	if !it.OK() {
		row.Error = it.Err.Error()
		return row
	}
	info := it.Info
	row.Series = info.SeriesTitle
	row.Season = seasonLabel(info)
	row.Episodes = display.FormatEpisodes(info.EpisodeNumbers)
	if info.AbsoluteEpisodeNumber > 0 {
		row.Absolute = strconv.Itoa(info.AbsoluteEpisodeNumber)
	}
	row.AirDate = info.AirDate.String()
	row.Quality = info.Quality.String()
	row.Group = info.ReleaseGroup
	row.Rule = info.Rule
	return row
}

func seasonLabel(info parser.Info) string {
	if info.SeasonNumber < 0 {
		return ""
	}
	return strconv.Itoa(info.SeasonNumber)
}

// WriteScanReport writes items as a table or CSV. Sizes are shown only when
// at least one item has one, so title-only scans stay narrow.
func WriteScanReport(w io.Writer, items []Item, format config.OutputFormat) error {
	rows := make([]scanRow, len(items))
	withSize := false
	for i, it := range items {
		rows[i] = newScanRow(it)
		withSize = withSize || it.Size > 0
	}
	if format == config.FormatCSV {
		return gocsv.Marshal(&rows, w)
	}

	headers := []string{"Input", "Series", "Season", "Episodes", "Absolute", "Air Date", "Quality", "Group", "Rule"}
	aligns := []display.Align{
		display.AlignLeft, display.AlignLeft, display.AlignRight, display.AlignRight,
		display.AlignRight, display.AlignLeft, display.AlignLeft, display.AlignLeft, display.AlignLeft,
	}
	if withSize {
		headers = append(headers, "Size")
		aligns = append(aligns, display.AlignRight)
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		rule := r.Rule
		if r.Error != "" {
			rule = "(" + r.Error + ")"
		}
		cells[i] = []string{r.Input, r.Series, r.Season, r.Episodes, r.Absolute, r.AirDate, r.Quality, r.Group, rule}
		if withSize {
			cells[i] = append(cells[i], display.FormatBytes(r.Size))
		}
	}
	_, err := fmt.Fprintln(w, display.RenderTable(headers, cells, aligns))
	return err
}

// planRow is one CSV/table row of a rename plan.
type planRow struct {
	Source string `csv:"source"`
	Target string `csv:"target"`
	Status string `csv:"status"`
	Error  string `csv:"error"`
}

func newPlanRow(r Rename) planRow {
	row := planRow{Source: r.Source, Target: r.Target}
	switch {
	case r.Err != nil && isSkip(r.Err):
		row.Status = "skip"
		row.Error = r.Err.Error()
	case r.Err != nil:
		row.Status = "error"
		row.Error = r.Err.Error()
	case r.Unchanged():
		row.Status = "unchanged"
	default:
		row.Status = "rename"
	}
	return row
}

// WritePlanReport writes a rename plan as a table or CSV.
func WritePlanReport(w io.Writer, plan []Rename, format config.OutputFormat) error {
	rows := make([]planRow, len(plan))
	for i, r := range plan {
		rows[i] = newPlanRow(r)
	}
	if format == config.FormatCSV {
		return gocsv.Marshal(&rows, w)
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		target := r.Target
		if r.Error != "" {
			target = "(" + r.Error + ")"
		}
		cells[i] = []string{r.Status, r.Source, target}
	}
	_, err := fmt.Fprintln(w, display.RenderTable([]string{"Status", "Source", "Target"}, cells, nil))
	return err
}
