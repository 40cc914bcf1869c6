package renderer

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ConsoleProgress reports scanline progress through logger.
// A line is printed whenever the whole-percent value changes, and always for the last row.
func ConsoleProgress(logger core.Logger) ProgressFunc {
	lastPercent := -1
	return func(rowsCompleted, totalRows int) {
		if totalRows <= 0 {
			return
		}
		percent := rowsCompleted * 100 / totalRows
		if percent == lastPercent && rowsCompleted != totalRows {
			return
		}
		lastPercent = percent
		logger.Printf("Rendering: %d/%d rows (%d%%)\n", rowsCompleted, totalRows, percent)
	}
}
