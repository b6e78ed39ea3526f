package engine

import (
	"encoding/csv"
	"os"
	"strconv"
)

type EventLogEntry struct {
	IntendedMS  uint64
	TimestampMS uint64
	Type        string
	Label       string
}

// EventLog records discrete session events: trial onsets and offsets, key
// responses, aborts.
type EventLog struct {
	Entries []EventLogEntry
}

func (l *EventLog) Log(intended, actual uint64, etype, label string) {
	l.Entries = append(l.Entries, EventLogEntry{
		IntendedMS:  intended,
		TimestampMS: actual,
		Type:        etype,
		Label:       label,
	})
}

func (l *EventLog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	w.Write([]string{"intended_ms", "actual_ms", "type", "label"})
	for _, e := range l.Entries {
		w.Write([]string{
			strconv.FormatUint(e.IntendedMS, 10),
			strconv.FormatUint(e.TimestampMS, 10),
			e.Type,
			e.Label,
		})
	}
	return nil
}

type SampleEntry struct {
	Trial     int
	Mode      string
	ElapsedMS uint64
	Progress  float64
	X, Y      float64
}

// SampleLog records the target position presented on every frame, one row per
// rendered frame, for offline alignment with the eye-tracker trace.
type SampleLog struct {
	Entries []SampleEntry
}

func (l *SampleLog) Log(trial int, mode string, elapsed uint64, progress, x, y float64) {
	l.Entries = append(l.Entries, SampleEntry{
		Trial:     trial,
		Mode:      mode,
		ElapsedMS: elapsed,
		Progress:  progress,
		X:         x,
		Y:         y,
	})
}

func (l *SampleLog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	w.Write([]string{"trial", "mode", "elapsed_ms", "progress", "x", "y"})
	for _, e := range l.Entries {
		w.Write([]string{
			strconv.Itoa(e.Trial),
			e.Mode,
			strconv.FormatUint(e.ElapsedMS, 10),
			strconv.FormatFloat(e.Progress, 'f', 4, 64),
			strconv.FormatFloat(e.X, 'f', 2, 64),
			strconv.FormatFloat(e.Y, 'f', 2, 64),
		})
	}
	return nil
}
