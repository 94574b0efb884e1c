package logger

import (
	"bytes"
	"fmt"
	"sync"
)

// TestLogger is a logger implementation for testing that captures all log messages
type TestLogger struct {
	mu       sync.Mutex
	messages []LogMessage
	buffer   *bytes.Buffer
}

// LogMessage represents a captured log message
type LogMessage struct {
	Level   string
	Message string
	Fields  map[string]interface{}
	Error   error
}

// NewTestLogger creates a new test logger
func NewTestLogger() *TestLogger {
	return &TestLogger{
		messages: make([]LogMessage, 0),
		buffer:   &bytes.Buffer{},
	}
}

func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg, nil, nil) }
func (l *TestLogger) Info(msg string)  { l.log("INFO", msg, nil, nil) }
func (l *TestLogger) Warn(msg string)  { l.log("WARN", msg, nil, nil) }
func (l *TestLogger) Error(msg string) { l.log("ERROR", msg, nil, nil) }

func (l *TestLogger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields, nil)
}

func (l *TestLogger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields, nil)
}

func (l *TestLogger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields, nil)
}

func (l *TestLogger) ErrorWithFields(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields, nil)
}

// WithError adds an error to the logger context
func (l *TestLogger) WithError(err error) Logger {
	return &scopedTestLogger{TestLogger: l, err: err}
}

// WithField adds a field to the logger context
func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return &scopedTestLogger{TestLogger: l, fields: map[string]interface{}{key: value}}
}

// WithFields adds multiple fields to the logger context
func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	return &scopedTestLogger{TestLogger: l, fields: copyFields(fields, nil)}
}

// log captures a log message
func (l *TestLogger) log(level, msg string, fields map[string]interface{}, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, LogMessage{
		Level:   level,
		Message: msg,
		Fields:  fields,
		Error:   err,
	})

	fmt.Fprintf(l.buffer, "[%s] %s", level, msg)
	if len(fields) > 0 {
		fmt.Fprintf(l.buffer, " fields=%v", fields)
	}
	if err != nil {
		fmt.Fprintf(l.buffer, " error=%v", err)
	}
	fmt.Fprintln(l.buffer)
}

// GetMessages returns all captured log messages
func (l *TestLogger) GetMessages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	messages := make([]LogMessage, len(l.messages))
	copy(messages, l.messages)
	return messages
}

// GetMessagesByLevel returns all messages of a specific level
func (l *TestLogger) GetMessagesByLevel(level string) []LogMessage {
	var filtered []LogMessage
	for _, msg := range l.GetMessages() {
		if msg.Level == level {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}

// HasMessage checks if a message with the given text was logged
func (l *TestLogger) HasMessage(text string) bool {
	for _, msg := range l.GetMessages() {
		if msg.Message == text {
			return true
		}
	}
	return false
}

// String returns all log messages as a string
func (l *TestLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.buffer.String()
}

// scopedTestLogger carries fields and an error into the parent TestLogger
type scopedTestLogger struct {
	*TestLogger
	fields map[string]interface{}
	err    error
}

func (l *scopedTestLogger) Debug(msg string) { l.log("DEBUG", msg, l.fields, l.err) }
func (l *scopedTestLogger) Info(msg string)  { l.log("INFO", msg, l.fields, l.err) }
func (l *scopedTestLogger) Warn(msg string)  { l.log("WARN", msg, l.fields, l.err) }
func (l *scopedTestLogger) Error(msg string) { l.log("ERROR", msg, l.fields, l.err) }

func (l *scopedTestLogger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, copyFields(l.fields, fields), l.err)
}

func (l *scopedTestLogger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, copyFields(l.fields, fields), l.err)
}

func (l *scopedTestLogger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, copyFields(l.fields, fields), l.err)
}

func (l *scopedTestLogger) ErrorWithFields(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, copyFields(l.fields, fields), l.err)
}

func (l *scopedTestLogger) WithError(err error) Logger {
	return &scopedTestLogger{TestLogger: l.TestLogger, fields: l.fields, err: err}
}

func (l *scopedTestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

func (l *scopedTestLogger) WithFields(fields map[string]interface{}) Logger {
	return &scopedTestLogger{TestLogger: l.TestLogger, fields: copyFields(l.fields, fields), err: l.err}
}

func copyFields(base, extra map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
