package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/namewright/internal/config"
	"github.com/backmassage/namewright/internal/logging"
	"github.com/backmassage/namewright/internal/naming"
)

// --- Discover tests ---

func TestDiscover_FiltersExtensions(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "show.s01e01.mkv")
	touch(t, fs, "/in", "show.s01e02.mp4")
	touch(t, fs, "/in", "music.mp3")
	touch(t, fs, "/in", "readme.txt")
	touch(t, fs, "/in", "release.nzb")
	touch(t, fs, "/in", "anime - 01.avi")

	files, err := Discover(fs, "/in")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"anime - 01.avi", "show.s01e01.mkv", "show.s01e02.mp4"}
	got := basenames(files)
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_PrunesSamples(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "main.s01e01.mkv")
	touch(t, fs, "/in/Sample", "main.s01e01.mkv")
	touch(t, fs, "/in/samples", "other.mkv")
	touch(t, fs, "/in", "main.s01e01-sample.mkv")
	touch(t, fs, "/in", "sample.mkv")

	files, err := Discover(fs, "/in")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0].Path != "/in/main.s01e01.mkv" {
		t.Errorf("got %v, want only /in/main.s01e01.mkv (samples should be pruned)", files)
	}
}

func TestDiscover_RecursiveAndSorted(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in/Show/Season 02", "ep01.mkv")
	touch(t, fs, "/in/Show/Season 01", "ep02.mkv")
	touch(t, fs, "/in/Show/Season 01", "ep01.mkv")

	files, err := Discover(fs, "/in")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	for i := 1; i < len(files); i++ {
		if files[i].Path < files[i-1].Path {
			t.Errorf("not sorted: %q before %q", files[i-1].Path, files[i].Path)
		}
	}
}

func TestDiscover_CaseInsensitiveExtensionAndSize(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/in/SHOW.S01E01.MKV", make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}
	files, err := Discover(fs, "/in")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0].Size != 2048 {
		t.Errorf("got %+v, want one 2048-byte file", files)
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	if _, err := Discover(afero.NewMemMapFs(), "/nope"); err == nil {
		t.Error("expected error for missing root")
	}
}

// --- Scan tests ---

func TestScanTitles_KeepsOrderAndRecordsFailures(t *testing.T) {
	titles := []string{
		"Series.Title.S01E01.720p.HDTV.x264-RlsGrp",
		"not a release at all",
		"Series.Title.S01E02.720p.HDTV.x264-RlsGrp",
		"The.Daily.Show.2013.10.30.HDTV.x264-RlsGrp",
	}
	items, err := ScanTitles(context.Background(), titles, 3)
	require.NoError(t, err)
	require.Len(t, items, len(titles))

	for i, it := range items {
		assert.Equal(t, titles[i], it.Input)
	}
	assert.True(t, items[0].OK())
	assert.Equal(t, []int{1}, items[0].Info.EpisodeNumbers)
	assert.ErrorIs(t, items[1].Err, ErrUnparsable)
	assert.Equal(t, []int{2}, items[2].Info.EpisodeNumbers)
	assert.True(t, items[3].Info.Daily)
}

func TestScan_ManyFilesFewWorkers(t *testing.T) {
	var files []File
	for ep := 1; ep <= 40; ep++ {
		files = append(files, File{Path: fmt.Sprintf("/in/Show.S02E%02d.mkv", ep), Size: int64(ep)})
	}
	items, err := Scan(context.Background(), files, 4)
	require.NoError(t, err)
	for i, it := range items {
		require.True(t, it.OK(), it.Input)
		assert.Equal(t, []int{i + 1}, it.Info.EpisodeNumbers)
		assert.Equal(t, int64(i+1), it.Size)
	}
}

func TestScan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, []File{{Path: "/in/Show.S01E01.mkv"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// --- Plan tests ---

func TestPlan_RendersCanonicalTargets(t *testing.T) {
	fs := afero.NewMemMapFs()
	items := scanPaths(t,
		"/tv/Series.Title.S01E01.720p.HDTV.x264-RlsGrp.mkv",
		"/tv/Series.Title.S01E02E03.720p.HDTV.x264-RlsGrp.mkv",
		"/tv/The.Daily.Show.2013.10.30.720p.HDTV.x264-RlsGrp.mkv",
		"/tv/[SubGroup] Anime Show - 05 [720p].mkv",
		"/tv/Series.Title.S02.COMPLETE.mkv",
		"/tv/junk.mkv",
	)

	plan := Plan(fs, "/lib", items, naming.DefaultConfig())
	require.Len(t, plan, 6)

	assert.Equal(t, "/lib/Series Title/Season 01/Series Title - S01E01 [HDTV-720p]-RlsGrp.mkv", plan[0].Target)
	assert.Equal(t, "/lib/Series Title/Season 01/Series Title - S01E02-E03 [HDTV-720p]-RlsGrp.mkv", plan[1].Target)
	assert.Equal(t, "/lib/The Daily Show/Season 2013/The Daily Show - 2013-10-30 [HDTV-720p].mkv", plan[2].Target)
	assert.Equal(t, "/lib/Anime Show/Season 01/Anime Show - 005 [HDTV-720p].mkv", plan[3].Target)
	assert.ErrorIs(t, plan[4].Err, ErrNotEpisode)
	assert.Empty(t, plan[4].Target)
	assert.ErrorIs(t, plan[5].Err, ErrUnparsable)
}

func TestPlan_HarmonizesYearVariants(t *testing.T) {
	items := scanPaths(t,
		"/tv/Show.2019.S01E01.720p.HDTV.x264-RlsGrp.mkv",
		"/tv/Show.S01E02.720p.HDTV.x264-RlsGrp.mkv",
	)
	plan := Plan(afero.NewMemMapFs(), "/lib", items, naming.DefaultConfig())
	require.NoError(t, plan[0].Err)
	require.NoError(t, plan[1].Err)
	assert.True(t, strings.HasPrefix(plan[0].Target, "/lib/Show (2019)/Season 01/"), plan[0].Target)
	assert.True(t, strings.HasPrefix(plan[1].Target, "/lib/Show (2019)/Season 01/"), plan[1].Target)
}

func TestPlan_ResolvesCollisions(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/lib/Show/Season 01", "Show - S01E01 [HDTV-720p].mkv")

	items := scanPaths(t,
		"/in/a/Show.S01E01.720p.HDTV.x264.mkv",
		"/in/b/Show.S01E01.720p.HDTV.x264.mkv",
		"/in/c/Show.S01E02.720p.HDTV.x264.mkv",
	)
	items = append(items, scanPaths(t, "/in/d/Show.S01E02.720p.HDTV.x264.mkv")...)

	plan := Plan(fs, "/lib", items, naming.DefaultConfig())

	// The first name is already on disk, so the batch starts at " (2)".
	require.NoError(t, plan[0].Err)
	assert.Equal(t, "/lib/Show/Season 01/Show - S01E01 [HDTV-720p] (2).mkv", plan[0].Target)
	assert.Equal(t, "/lib/Show/Season 01/Show - S01E01 [HDTV-720p] (3).mkv", plan[1].Target)
	assert.Equal(t, "/lib/Show/Season 01/Show - S01E02 [HDTV-720p].mkv", plan[2].Target)
	assert.Equal(t, "/lib/Show/Season 01/Show - S01E02 [HDTV-720p] (2).mkv", plan[3].Target)
}

func TestPlan_SkipsSuffixesTakenOnDisk(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/lib/Show/Season 01", "Show - S01E01 [HDTV-720p].mkv")
	touch(t, fs, "/lib/Show/Season 01", "Show - S01E01 [HDTV-720p] (2).mkv")

	plan := Plan(fs, "/lib", scanPaths(t, "/in/Show.S01E01.720p.HDTV.x264.mkv"), naming.DefaultConfig())
	require.NoError(t, plan[0].Err)
	assert.Equal(t, "/lib/Show/Season 01/Show - S01E01 [HDTV-720p] (3).mkv", plan[0].Target)
}

func TestPlan_UnchangedWhenAlreadyCanonical(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/lib/Series Title/Season 01/Series Title - S01E01 [HDTV-720p]-RlsGrp.mkv"
	touch(t, fs, filepath.Dir(path), filepath.Base(path))

	plan := Plan(fs, "/lib", scanPaths(t, path), naming.DefaultConfig())
	require.NoError(t, plan[0].Err)
	assert.True(t, plan[0].Unchanged(), plan[0].Target)
}

// --- Apply / Run tests ---

func TestApply_DryRunMovesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "Series.Title.S01E01.720p.HDTV.x264-RlsGrp.mkv")

	plan := Plan(fs, "/in", scanPaths(t, "/in/Series.Title.S01E01.720p.HDTV.x264-RlsGrp.mkv"), naming.DefaultConfig())
	stats := Apply(context.Background(), fs, plan, true, testLogger(t))

	assert.Equal(t, 1, stats.Renamed)
	exists, _ := afero.Exists(fs, "/in/Series.Title.S01E01.720p.HDTV.x264-RlsGrp.mkv")
	assert.True(t, exists, "dry run must not move the source")
}

func TestRun_AppliesRenames(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/dl/Series.Title.S01E01.720p.HDTV.x264-RlsGrp.mkv", make([]byte, 100), 0o644))
	touch(t, fs, "/in/dl", "Series.Title.S01E02.720p.HDTV.x264-RlsGrp.mkv")
	touch(t, fs, "/in/dl", "Series.Title.S02.Extras.mkv")
	touch(t, fs, "/in/dl/Sample", "Series.Title.S01E01.720p.HDTV.x264-RlsGrp.mkv")

	cfg := config.DefaultConfig()
	cfg.DryRun = false
	cfg.Workers = 2

	stats, plan, err := Run(context.Background(), fs, &cfg, naming.DefaultConfig(), "/in", testLogger(t))
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Renamed)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, int64(100), stats.TotalBytes)
	assert.Equal(t, 3, stats.Processed())

	for _, name := range []string{
		"/in/Series Title/Season 01/Series Title - S01E01 [HDTV-720p]-RlsGrp.mkv",
		"/in/Series Title/Season 01/Series Title - S01E02 [HDTV-720p]-RlsGrp.mkv",
	} {
		exists, _ := afero.Exists(fs, name)
		assert.True(t, exists, name)
	}
	gone, _ := afero.Exists(fs, "/in/dl/Series.Title.S01E01.720p.HDTV.x264-RlsGrp.mkv")
	assert.False(t, gone)
}

func TestApply_TargetAppearsBeforeMove(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/in", "Show.S01E01.mkv")
	plan := []Rename{{Source: "/in/Show.S01E01.mkv", Target: "/in/Show/Season 01/Show - S01E01.mkv"}}
	touch(t, fs, "/in/Show/Season 01", "Show - S01E01.mkv")

	stats := Apply(context.Background(), fs, plan, false, testLogger(t))
	assert.Equal(t, 1, stats.Failed)
	exists, _ := afero.Exists(fs, "/in/Show.S01E01.mkv")
	assert.True(t, exists)
}

// --- Report tests ---

func TestWriteScanReport_CSV(t *testing.T) {
	items, err := ScanTitles(context.Background(), []string{
		"Series.Title.S01E01E02.720p.HDTV.x264-RlsGrp",
		"nothing here",
	}, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteScanReport(&buf, items, config.FormatCSV))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "input,series,season,episodes,absolute,air_date,quality,release_group,rule,size,error", lines[0])
	assert.Equal(t, "Series.Title.S01E01E02.720p.HDTV.x264-RlsGrp,Series Title,1,1-2,,,HDTV-720p,RlsGrp,multi-episode,0,", lines[1])
	assert.Contains(t, lines[2], ErrUnparsable.Error())
}

func TestWriteScanReport_Table(t *testing.T) {
	items, err := ScanTitles(context.Background(), []string{"Series.Title.S01E01.720p.HDTV.x264-RlsGrp"}, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteScanReport(&buf, items, config.FormatTable))
	out := buf.String()
	for _, want := range []string{"Series Title", "HDTV-720p", "RlsGrp", "standard"} {
		assert.Contains(t, out, want)
	}
}

func TestWritePlanReport_CSV(t *testing.T) {
	plan := []Rename{
		{Source: "/a.mkv", Target: "/b.mkv"},
		{Source: "/same.mkv", Target: "/same.mkv"},
		{Source: "/junk.mkv", Err: ErrUnparsable},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePlanReport(&buf, plan, config.FormatCSV))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "source,target,status,error", lines[0])
	assert.Equal(t, "/a.mkv,/b.mkv,rename,", lines[1])
	assert.Equal(t, "/same.mkv,/same.mkv,unchanged,", lines[2])
	assert.Equal(t, "/junk.mkv,,skip,"+ErrUnparsable.Error(), lines[3])
}

func TestRunStats_Processed(t *testing.T) {
	s := RunStats{Total: 10, Renamed: 3, Unchanged: 2, Skipped: 1, Failed: 1}
	if got := s.Processed(); got != 7 {
		t.Errorf("Processed: got %d, want 7", got)
	}
}

// --- Helpers ---

func touch(t *testing.T, fs afero.Fs, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := afero.WriteFile(fs, path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func scanPaths(t *testing.T, paths ...string) []Item {
	t.Helper()
	files := make([]File, len(paths))
	for i, p := range paths {
		files[i] = File{Path: p}
	}
	items, err := Scan(context.Background(), files, 2)
	require.NoError(t, err)
	return items
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func basenames(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = filepath.Base(f.Path)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
