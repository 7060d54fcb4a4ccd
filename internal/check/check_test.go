package check

import (
	"fmt"
	"strings"
	"testing"

	"github.com/backmassage/namewright/internal/naming"
	"github.com/backmassage/namewright/internal/sample"
)

// recordLogger collects messages by level.
type recordLogger struct {
	lines map[string][]string
}

func newRecordLogger() *recordLogger { return &recordLogger{lines: map[string][]string{}} }

func (r *recordLogger) add(level, format string, args ...interface{}) {
	r.lines[level] = append(r.lines[level], fmt.Sprintf(format, args...))
}
func (r *recordLogger) Info(f string, a ...interface{})    { r.add("info", f, a...) }
func (r *recordLogger) Success(f string, a ...interface{}) { r.add("success", f, a...) }
func (r *recordLogger) Warn(f string, a ...interface{})    { r.add("warn", f, a...) }
func (r *recordLogger) Error(f string, a ...interface{})   { r.add("error", f, a...) }
func (r *recordLogger) Debug(f string, a ...interface{})   { r.add("debug", f, a...) }

func (r *recordLogger) contains(level, sub string) bool {
	for _, l := range r.lines[level] {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func TestRunCheck_Defaults(t *testing.T) {
	log := newRecordLogger()
	if !RunCheck(naming.DefaultConfig(), log) {
		t.Fatalf("default config failed check: %v", log.lines["error"])
	}
	if len(log.lines["warn"]) != 0 {
		t.Errorf("unexpected warnings: %v", log.lines["warn"])
	}
	want := "standard: Series Title - S01E01 - Episode Title (1) [HDTV-720p]-RlsGrp"
	if !log.contains("success", want) {
		t.Errorf("missing sample %q in %v", want, log.lines["success"])
	}
	if !log.contains("success", "folders: Series Title/Season 01") {
		t.Errorf("missing folders in %v", log.lines["success"])
	}
	if !log.contains("debug", "season/episode") {
		t.Errorf("missing token listing in %v", log.lines["debug"])
	}
}

func TestRunCheck_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*naming.Config)
	}{
		{"unclosed token", func(c *naming.Config) { c.EpisodeFormat = "{Series Title - S{season}E{episode}" }},
		{"unknown token", func(c *naming.Config) { c.SeasonFormat = "{Bogus}" }},
		{"bad separator", func(c *naming.Config) { c.Separator = "pipe" }},
		{"no episode token", func(c *naming.Config) { c.EpisodeFormat = "{Series Title}" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := naming.DefaultConfig()
			tt.mutate(&cfg)
			log := newRecordLogger()
			if RunCheck(cfg, log) {
				t.Error("expected check to fail")
			}
			if !log.contains("error", "Invalid naming config") {
				t.Errorf("missing error in %v", log.lines["error"])
			}
		})
	}
}

func TestRunCheck_WarnsWhenSampleDoesNotParseBack(t *testing.T) {
	cfg := naming.DefaultConfig()
	cfg.EpisodeFormat = "{Series Title} - {Season} - {Episode}"
	log := newRecordLogger()
	if !RunCheck(cfg, log) {
		t.Fatalf("check failed: %v", log.lines["error"])
	}
	if !log.contains("warn", "does not parse back") {
		t.Errorf("expected parse-back warning, got %v", log.lines["warn"])
	}
}

func TestParsesBack(t *testing.T) {
	cfg := naming.DefaultConfig()
	for _, kind := range sample.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			if !parsesBack(sample.Build(kind, cfg)) {
				t.Errorf("%s sample does not parse back", kind)
			}
		})
	}
	if parsesBack(sample.Result{Kind: sample.KindStandard, Filename: "nothing"}) {
		t.Error("unparsable name reported as parsing back")
	}
}
