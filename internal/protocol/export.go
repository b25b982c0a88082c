package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExportJSON serializes the session log as a pretty-printed JSON array. An
// empty log still serializes as [] so downstream tooling always gets an
// array.
func (e *Engine) ExportJSON() ([]byte, error) {
	e.mu.Lock()
	entries := make([]SessionLogEntry, len(e.log))
	copy(entries, e.log)
	e.mu.Unlock()
	return json.MarshalIndent(entries, "", "  ")
}

func ExportFilename(now time.Time) string {
	return fmt.Sprintf("emotion-session-%s.json", now.Format("2006-01-02"))
}
