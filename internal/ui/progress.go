package ui

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// NewProgressWriter returns a tracker display for long builds. Callers
// start it with go writer.Render() and it stops once every tracker is done.
func NewProgressWriter(w io.Writer) progress.Writer {
	writer := progress.NewWriter()
	writer.SetOutputWriter(w)
	writer.SetAutoStop(true)
	writer.SetTrackerLength(30)
	writer.SetStyle(progress.StyleBlocks)
	writer.Style().Visibility.ETA = false
	writer.Style().Visibility.Speed = false
	writer.Style().Visibility.Value = true

	return writer
}

// NewPageTracker adds a tracker counting rendered pages to writer.
func NewPageTracker(writer progress.Writer, message string, total int) *progress.Tracker {
	tracker := &progress.Tracker{
		Message: message,
		Total:   int64(total),
		Units:   progress.UnitsDefault,
	}
	writer.AppendTracker(tracker)

	return tracker
}
