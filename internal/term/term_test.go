package term

import (
	"os"
	"testing"

	"github.com/backmassage/namewright/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	if !Enabled() || Red == "" || NC == "" {
		t.Fatalf("always: colors not set (Red=%q NC=%q)", Red, NC)
	}

	Configure(config.ColorNever)
	if Enabled() || Red != "" || Green != "" || NC != "" {
		t.Fatalf("never: colors still set (Red=%q NC=%q)", Red, NC)
	}
}

func TestConfigure_AutoHonorsNoColor(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })
	t.Setenv("NO_COLOR", "1")

	Configure(config.ColorAuto)
	if Enabled() {
		t.Error("auto with NO_COLOR set should disable colors")
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) = true")
	}
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
