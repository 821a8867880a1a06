// Package observe provides structured observability for engine operations.
package observe

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Observer defines the interface for structured observability during
// plan/apply/destroy operations.
type Observer interface {
	// Printf logs a plain message.
	Printf(format string, v ...interface{})

	// Event emits a structured event.
	Event(event Event)

	// WithFields returns a new Observer with additional context fields.
	WithFields(fields map[string]string) Observer
}

// Event represents a structured operation event.
type Event struct {
	Type      EventType         // Type of event
	Operation string            // Operation name (e.g. "plan", "apply")
	Message   string            // Human-readable message
	Resource  string            // Resource name/URN if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of operation event.
type EventType string

const (
	// EventOperationStarted indicates an engine operation has started.
	EventOperationStarted EventType = "operation.started"
	// EventOperationCompleted indicates an engine operation completed.
	EventOperationCompleted EventType = "operation.completed"
	// EventOperationFailed indicates an engine operation failed.
	EventOperationFailed EventType = "operation.failed"
	// EventOperationRefused indicates an operation was refused before
	// reaching the engine (e.g. missing destroy confirmation).
	EventOperationRefused EventType = "operation.refused"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	log.Print(o.formatEvent(event))
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string)
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}
	return &ConsoleObserver{contextFields: newFields}
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))
	if event.Operation != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Operation))
	}
	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}
	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// LogOperationStart logs an operation start event. Context such as the
// stack name comes from the observer's fields (WithFields).
func LogOperationStart(observer Observer, operation string) {
	observer.Event(Event{
		Type:      EventOperationStarted,
		Operation: operation,
		Message:   "starting",
	})
}

// LogOperationComplete logs an operation completion event.
func LogOperationComplete(observer Observer, operation string, duration time.Duration) {
	observer.Event(Event{
		Type:      EventOperationCompleted,
		Operation: operation,
		Message:   fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogOperationFailed logs an operation failure event.
func LogOperationFailed(observer Observer, operation string, err error) {
	observer.Event(Event{
		Type:      EventOperationFailed,
		Operation: operation,
		Message:   fmt.Sprintf("failed: %v", err),
	})
}
