package server

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"
)

// consoleBuffer is how many log lines a render may queue before lines are dropped
const consoleBuffer = 64

// ConsoleMessage is a log line forwarded to the browser as a "console" event
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info" or "error"
}

// WebLogger implements core.Logger for a single render. Lines go to the
// server log and, without blocking, to the render's console channel.
type WebLogger struct {
	renderID string
	out      chan<- ConsoleMessage
	dropped  atomic.Int64
}

// NewWebLogger creates a logger for one render. out may be nil.
func NewWebLogger(renderID string, out chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{renderID: renderID, out: out}
}

// Printf logs an info line
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	wl.send("info", fmt.Sprintf(format, args...))
}

// Errorf logs an error line
func (wl *WebLogger) Errorf(format string, args ...interface{}) {
	wl.send("error", fmt.Sprintf(format, args...))
}

// Dropped returns how many lines were not delivered because the channel was full
func (wl *WebLogger) Dropped() int64 {
	return wl.dropped.Load()
}

func (wl *WebLogger) send(level, message string) {
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.out == nil {
		return
	}
	select {
	case wl.out <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		wl.dropped.Add(1)
	}
}
