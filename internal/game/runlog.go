package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunLog summarises one session. It is appended to runs.jsonl when the
// session closes.
type RunLog struct {
	Session string        `json:"session"`
	Player  string        `json:"player,omitempty"`
	Started time.Time     `json:"started"`
	Elapsed time.Duration `json:"elapsed_ns"`
	Ticks   int           `json:"ticks"`
	Steps   int           `json:"steps"`
	Pickups int           `json:"pickups"`
	Drops   int           `json:"drops"`
	Toggles int           `json:"toggles"`
	Failed  int           `json:"failed_interactions"`
	Held    []string      `json:"held,omitempty"`
}

// saveRunLog appends log as a single JSON line to runs.jsonl.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// runLogDir returns $XDG_DATA_HOME/vecerka, defaulting to
// ~/.local/share/vecerka.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "vecerka"), nil
}
