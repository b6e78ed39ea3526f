package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSession(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSession(t *testing.T) {
	path := writeSession(t, "horizontal,,2000,Warmup\ncircular,8000,1000\njump\nrandom,0,500\n")

	s, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if len(s.Trials) != 4 {
		t.Fatalf("len(Trials) = %d, want 4", len(s.Trials))
	}

	tr := s.Trials[0]
	if tr.ModeKey != "horizontal" || tr.DurationMS != 15000 || tr.PauseMS != 2000 || tr.Label != "Warmup" {
		t.Errorf("trial 0 = %+v", tr)
	}
	if tr.GetPos == nil {
		t.Error("trial 0 has nil GetPos")
	}

	tr = s.Trials[1]
	if tr.DurationMS != 8000 {
		t.Errorf("trial 1 duration = %d, want override 8000", tr.DurationMS)
	}
	if tr.Label != "Circular Tracking" {
		t.Errorf("trial 1 label = %q, want mode name", tr.Label)
	}

	tr = s.Trials[2]
	if tr.DurationMS != 16000 || tr.PauseMS != 0 {
		t.Errorf("trial 2 = %+v, want mode defaults", tr)
	}

	// Explicit zero duration falls back to the default too.
	tr = s.Trials[3]
	if tr.DurationMS != 20000 {
		t.Errorf("trial 3 duration = %d, want 20000", tr.DurationMS)
	}
}

func TestLoadSessionCaseAndSpace(t *testing.T) {
	path := writeSession(t, " Horizontal , 5000 \n")
	s, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if s.Trials[0].ModeKey != "horizontal" || s.Trials[0].DurationMS != 5000 {
		t.Errorf("trial = %+v", s.Trials[0])
	}
}

func TestLoadSessionUnknownMode(t *testing.T) {
	path := writeSession(t, "horizontal\nspiral\n")
	_, err := LoadSession(path)
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if !strings.Contains(err.Error(), "line 2") || !strings.Contains(err.Error(), "spiral") {
		t.Errorf("error = %v, want line number and mode key", err)
	}
}

func TestLoadSessionBadDuration(t *testing.T) {
	path := writeSession(t, "jump,soon\n")
	if _, err := LoadSession(path); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoadSessionEmpty(t *testing.T) {
	path := writeSession(t, "\n")
	if _, err := LoadSession(path); err == nil {
		t.Fatal("expected error for session without trials")
	}
}

func TestLoadSessionMissingFile(t *testing.T) {
	if _, err := LoadSession(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSessionTotalDuration(t *testing.T) {
	path := writeSession(t, "horizontal,10000,2000\njump,4000,1000\n")
	s, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if got := s.TotalDuration(); got != 17000 {
		t.Errorf("TotalDuration() = %d, want 17000", got)
	}
}
