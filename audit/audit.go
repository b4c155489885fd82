package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marcelsud/webhook-relay/routes"
)

// FilenameLayout names records by local capture time, one per second.
// Two records captured in the same second share a name and the later one wins.
const (
	FilenamePrefix = "payload_"
	FilenameLayout = "2006-01-02_15-04-05"
)

/* FileLogger writes each audit record to its own file under Dir
 * No append, rotation or size cap
 */
type FileLogger struct {
	Dir string
	now func() time.Time
}

// NewFileLogger creates a file audit logger rooted at dir
func NewFileLogger(dir string) *FileLogger {
	return &FileLogger{
		Dir: dir,
		now: time.Now,
	}
}

// Log writes body verbatim to <Dir>/payload_<timestamp>.json
func (l *FileLogger) Log(ctx context.Context, route routes.Route, body []byte) error {
	// MkdirAll ignores errors where the directory exists
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	path := filepath.Join(l.Dir, Filename(l.now()))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("writing audit record for %s: %w", route, err)
	}
	return nil
}

// Filename returns the record name for a capture time
func Filename(t time.Time) string {
	return FilenamePrefix + t.Local().Format(FilenameLayout) + ".json"
}
