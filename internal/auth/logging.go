package auth

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AuthLogger appends authentication attempts to a log file when enabled.
type AuthLogger struct {
	Enabled bool
	Path    string
}

// NewAuthLogger creates a logger writing to log/auth.log.
func NewAuthLogger(enabled bool) *AuthLogger {
	return &AuthLogger{Enabled: enabled, Path: filepath.Join("log", "auth.log")}
}

// LogAuthAttempt appends an authentication attempt record to the log file.
// Fields: timestamp (RFC3339) | level | authType | status | identifier? | message?
// level: debug|info|warning|error|fatal
// authType: Local|Logout
// status: Success|Fail
// identifier: email or user ID (optional)
// message: additional info (optional)
func (l *AuthLogger) LogAuthAttempt(level string, authType string, status string, identifier string, message string) {
	if l == nil || !l.Enabled {
		return
	}

	if err := os.MkdirAll(filepath.Dir(l.Path), 0o750); err != nil {
		// best-effort: if logging fails, do not crash the app, just return
		return
	}
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	ts := time.Now().UTC().Format(time.RFC3339)
	parts := []string{ts, level, authType, status}
	if identifier != "" {
		parts = append(parts, identifier)
	}
	if message != "" {
		parts = append(parts, message)
	}
	line := strings.Join(parts, " | ") + "\n"

	_, _ = f.WriteString(line)
}
