package engine

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestEventLogSave(t *testing.T) {
	log := &EventLog{}
	log.Log(1000, 1013, "TRIAL_ONSET", "Horizontal Sine")
	log.Log(2500, 2500, "RESPONSE", "Space")

	path := filepath.Join(t.TempDir(), "events.csv")
	if err := log.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}
	want := []string{"intended_ms", "actual_ms", "type", "label"}
	for i, col := range want {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][0] != "1000" || records[1][1] != "1013" || records[1][2] != "TRIAL_ONSET" {
		t.Errorf("row 1 = %v", records[1])
	}
}

func TestSampleLogSave(t *testing.T) {
	log := &SampleLog{}
	log.Log(1, "horizontal", 16, 0.0011, 502.75, 540)

	path := filepath.Join(t.TempDir(), "targets.csv")
	if err := log.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(records))
	}
	row := records[1]
	if row[0] != "1" || row[1] != "horizontal" || row[2] != "16" {
		t.Errorf("row = %v", row)
	}
	if row[3] != "0.0011" {
		t.Errorf("progress = %q, want 0.0011", row[3])
	}
	if row[4] != "502.75" || row[5] != "540.00" {
		t.Errorf("position = %q,%q", row[4], row[5])
	}
}
