package tuning

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDefault(t *testing.T) {
	d := Default()
	if d.Player.Acceleration != 360 || d.Player.Deceleration != 1000 || d.Player.MaxSpeed != 160 {
		t.Fatalf("unexpected player defaults: %+v", d.Player)
	}
	if d.Player.JumpSpeed != 60 {
		t.Fatalf("expected jump speed 60, got %v", d.Player.JumpSpeed)
	}
	if d.Player.TieBreak != "right" {
		t.Fatalf("expected right tie break, got %q", d.Player.TieBreak)
	}
	if d.Sensors.PlacerRadius != 16 || d.Sensors.SpotRadius != 20 {
		t.Fatalf("unexpected sensor defaults: %+v", d.Sensors)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero acceleration", func(t *Tuning) { t.Player.Acceleration = 0 }},
		{"negative max speed", func(t *Tuning) { t.Player.MaxSpeed = -1 }},
		{"negative gravity", func(t *Tuning) { t.Physics.Gravity = -9 }},
		{"unknown tie break", func(t *Tuning) { t.Player.TieBreak = "both" }},
		{"pulse range inverted", func(t *Tuning) { t.Marker.PulseMin = 2 }},
		{"negative damping", func(t *Tuning) { t.Ball.Damping = -0.1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tu := Default()
			tc.mutate(&tu)
			err := tu.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning should be valid: %v", err)
	}
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	if _, err := Parse([]byte("player: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func writeTuning(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	return path
}

const customYAML = `
player:
  acceleration: 500
  deceleration: 800
  max_speed: 200
  jump_speed: 75
  tie_break: cancel
physics:
  gravity: 100
ball:
  radius: 10
  restitution: 0.5
  friction: 0.5
  damping: 0.5
  hop_impulse: 40
  spin_step: 0.2
sensors:
  placer_radius: 12
  spot_radius: 18
marker:
  size: 6
  pulse_min: 1
  pulse_max: 1.5
  pulse_period: 1
`

func TestLoadCustomPath(t *testing.T) {
	path := writeTuning(t, t.TempDir(), customYAML)

	tu, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if tu.Player.Acceleration != 500 || tu.Player.TieBreak != "cancel" || tu.Physics.Gravity != 100 {
		t.Errorf("custom values not loaded: %+v", tu)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error for missing custom file")
		}
	})
	t.Run("invalid", func(t *testing.T) {
		path := writeTuning(t, t.TempDir(), "player:\n  acceleration: -1\n")
		_, _, err := Load(path)
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	tu, source, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != "" {
		t.Skipf("found tuning at %s, cannot test fallback", source)
	}
	if tu != Default() {
		t.Errorf("expected default tuning, got %+v", tu)
	}
}

// userTuningDir points the user config dir at a temp dir and returns the
// directory Load searches there.
func userTuningDir(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	base, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	dir := filepath.Join(base, "bombspot")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return dir
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.New(&buf))
	t.Cleanup(func() { log.SetDefault(prev) })
	return &buf
}

func TestLoadUserConfigDir(t *testing.T) {
	path := writeTuning(t, userTuningDir(t), customYAML)

	tu, source, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Fatalf("source = %q, expected %q", source, path)
	}
	if tu.Player.MaxSpeed != 200 {
		t.Errorf("user values not loaded: %+v", tu.Player)
	}
}

func TestLoadWarnsOnBrokenSearchFile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "parse error", body: "player: ["},
		{name: "validation error", body: "player:\n  acceleration: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTuning(t, userTuningDir(t), tt.body)
			buf := captureLog(t)

			tu, source, err := Load("")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if source == path {
				t.Fatalf("broken file %s was used", path)
			}
			if source == "" && tu != Default() {
				t.Errorf("expected default tuning, got %+v", tu)
			}
			out := buf.String()
			if !strings.Contains(out, "ignoring tuning file") || !strings.Contains(out, path) {
				t.Fatalf("expected a warning naming %s, got %q", path, out)
			}
		})
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := writeTuning(t, t.TempDir(), customYAML)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(customYAML+"\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != w.Path() {
			t.Errorf("event for %q, expected %q", name, w.Path())
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no event after writing the tuning file")
	}
}

func TestWatcherReportsLastWriteOfBurst(t *testing.T) {
	path := writeTuning(t, t.TempDir(), customYAML)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("partial"), 0o644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("final"), 0o644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	var seen []string
	deadline := time.After(3 * time.Second)
	for len(seen) == 0 {
		select {
		case name := <-w.Events:
			data, err := os.ReadFile(name)
			if err != nil {
				t.Fatalf("read on change: %v", err)
			}
			seen = append(seen, string(data))
		case <-deadline:
			t.Fatalf("no event after writing the tuning file")
		}
	}

	select {
	case <-w.Events:
		t.Fatalf("burst reported more than once")
	case <-time.After(300 * time.Millisecond):
	}

	if seen[0] != "final" {
		t.Fatalf("contents on change = %q, expected the last write", seen[0])
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeTuning(t, dir, customYAML)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected event for %q", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeTuning(t, t.TempDir(), customYAML)
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := w.Poll(); ok {
		t.Fatalf("closed watcher should not report events")
	}
}
