package recipepairs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// CommandLogger is the interface for session command logging.
type CommandLogger interface {
	LogCommand(entry CommandLog) error
}

// NewSessionLogFilePath returns the log file path for a session inside dir.
func NewSessionLogFilePath(dir, sessionID string) string {
	return filepath.Join(dir, fmt.Sprintf("%d.%s.json", time.Now().Unix(), sessionID))
}

// CommandLog represents a single command entered during a session
type CommandLog struct {
	Sequence  int          `json:"sequence"`
	Timestamp time.Time    `json:"timestamp"`
	SessionID string       `json:"session_id,omitempty"`
	Line      string       `json:"line"`
	ToolCall  *ToolCallLog `json:"tool_call,omitempty"`
	Output    string       `json:"output,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// ToolCallLog represents the tool execution behind a command
type ToolCallLog struct {
	Name   string         `json:"name"`
	Input  map[string]any `json:"input"`
	Output map[string]any `json:"output"`
	Error  string         `json:"error,omitempty"`
}

// FileCommandLogger logs to a file, accumulating commands and flushing at the end
type FileCommandLogger struct {
	sessionID string
	commands  []CommandLog
	writer    io.Writer
}

// NewFileCommandLogger creates a new file-based command logger
func NewFileCommandLogger(sessionID string, writer io.Writer) *FileCommandLogger {
	return &FileCommandLogger{
		sessionID: sessionID,
		commands:  make([]CommandLog, 0),
		writer:    writer,
	}
}

// LogCommand logs a command to the buffer (does not flush immediately)
func (l *FileCommandLogger) LogCommand(entry CommandLog) error {
	l.commands = append(l.commands, entry)
	return nil
}

// Flush flushes all accumulated commands to the writer
func (l *FileCommandLogger) Flush() error {
	if l.writer == nil {
		return nil
	}

	data, err := json.MarshalIndent(map[string]any{
		"session": map[string]any{
			"id":        l.sessionID,
			"timestamp": time.Now(),
			"commands":  l.commands,
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session log: %w", err)
	}

	if _, err := l.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write session log: %w", err)
	}

	// Clear the buffer after successful write
	l.commands = l.commands[:0]
	return nil
}

// NoOpCommandLogger is a logger that discards all log entries
type NoOpCommandLogger struct{}

// NewNoOpCommandLogger creates a new no-op command logger
func NewNoOpCommandLogger() *NoOpCommandLogger {
	return &NoOpCommandLogger{}
}

// LogCommand discards the command log (no-op)
func (nop *NoOpCommandLogger) LogCommand(entry CommandLog) error {
	return nil
}

// StdoutCommandLogger logs each command as a JSON line (for Lambda/CloudWatch)
type StdoutCommandLogger struct {
	out io.Writer
}

// NewStdoutCommandLogger creates a new stdout-based command logger
func NewStdoutCommandLogger() *StdoutCommandLogger {
	return &StdoutCommandLogger{out: os.Stdout}
}

// LogCommand writes the command as a JSON line
func (l *StdoutCommandLogger) LogCommand(entry CommandLog) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	fmt.Fprintln(l.out, string(data))
	return nil
}
