package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const viewedMonthLayout = "2006-01"

type uiState struct {
	ViewedMonth string `json:"viewed_month"`
}

func (s uiState) viewedMonth(loc *time.Location) (time.Time, bool) {
	raw := strings.TrimSpace(s.ViewedMonth)
	if raw == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(viewedMonthLayout, raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func (m *Model) persistState() error {
	if strings.TrimSpace(m.stateFilePath) == "" {
		return nil
	}
	dir := filepath.Dir(m.stateFilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	state := uiState{
		ViewedMonth: m.ViewedMonth.Format(viewedMonthLayout),
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	tmp := m.stateFilePath + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.stateFilePath)
}

// loadUIState tolerates a missing or empty state file and reports
// defaults. A malformed file is an error so callers can fall back
// deliberately rather than silently clobbering it on exit.
func loadUIState(path string) (uiState, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return uiState{}, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return uiState{}, nil
		}
		return uiState{}, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return uiState{}, nil
	}
	var state uiState
	if err := json.Unmarshal(raw, &state); err != nil {
		return uiState{}, err
	}
	return state, nil
}
