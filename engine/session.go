package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dilshan-49/GazeBall/trajectory"
)

// Trial is one scheduled run of a pursuit mode: an inter-trial pause with the
// fixation cross, then DurationMS of the moving target.
type Trial struct {
	ModeKey    string
	ModeName   string
	DurationMS uint64
	PauseMS    uint64
	Label      string
	GetPos     trajectory.PosFunc
}

type Session struct {
	Trials []Trial
}

// TotalDuration is the scheduled length of the session in milliseconds.
func (s *Session) TotalDuration() uint64 {
	var total uint64
	for _, t := range s.Trials {
		total += t.PauseMS + t.DurationMS
	}
	return total
}

// LoadSession reads a session CSV. Each record is
// mode[,duration_ms[,pause_ms[,label]]]; a duration of 0 (or an empty field)
// uses the mode's default, label defaults to the mode's display name.
func LoadSession(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var trials []Trial
	for i, record := range records {
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(record[0]))
		mode, ok := trajectory.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("line %d: unknown mode: %s", i+1, record[0])
		}

		duration := mode.Duration
		if len(record) > 1 && strings.TrimSpace(record[1]) != "" {
			d, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid duration: %v", i+1, err)
			}
			if d > 0 {
				duration = d
			}
		}

		var pause uint64
		if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
			pause, err = strconv.ParseUint(strings.TrimSpace(record[2]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid pause: %v", i+1, err)
			}
		}

		label := mode.Name
		if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
			label = strings.TrimSpace(record[3])
		}

		trials = append(trials, Trial{
			ModeKey:    key,
			ModeName:   mode.Name,
			DurationMS: duration,
			PauseMS:    pause,
			Label:      label,
			GetPos:     mode.GetPos,
		})
	}

	if len(trials) == 0 {
		return nil, fmt.Errorf("%s: no trials", path)
	}

	return &Session{Trials: trials}, nil
}
