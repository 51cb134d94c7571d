package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/g5becks/mdxkit/internal/source"
	"github.com/g5becks/mdxkit/internal/sync"
	"github.com/g5becks/mdxkit/internal/ui"
)

var errMock = errors.New("mock error")

func newTestPrinter(buf *bytes.Buffer, dryRun bool) *ui.FetchPrinter {
	return ui.NewFetchPrinterWithWriter(buf, dryRun)
}

func TestHandleEventStart(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.HandleEvent(sync.Event{
		Kind:   sync.EventSourceStart,
		Source: "petstore",
	})

	out := buf.String()
	if !strings.Contains(out, "petstore") {
		t.Errorf("start event output missing prefix, got: %q", out)
	}
	if !strings.Contains(out, "fetching") {
		t.Errorf("start event output missing 'fetching', got: %q", out)
	}
}

func TestHandleEventDoneSuccess(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.HandleEvent(sync.Event{
		Kind:   sync.EventSourceDone,
		Source: "petstore",
		Result: &source.FetchResult{Downloaded: true, Bytes: 2048},
	})

	out := buf.String()
	if !strings.Contains(out, "petstore") {
		t.Errorf("done event output missing prefix, got: %q", out)
	}
	if !strings.Contains(out, "2.0 KiB") {
		t.Errorf("done event output missing size, got: %q", out)
	}
}

func TestHandleEventDoneSkipped(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.HandleEvent(sync.Event{
		Kind:   sync.EventSourceDone,
		Source: "petstore",
		Result: &source.FetchResult{Skipped: true},
	})

	out := buf.String()
	if !strings.Contains(out, "up to date") {
		t.Errorf("skipped event output missing 'up to date', got: %q", out)
	}
}

func TestHandleEventDoneError(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.HandleEvent(sync.Event{
		Kind:   sync.EventSourceDone,
		Source: "petstore",
		Err:    errMock,
	})

	out := buf.String()
	if !strings.Contains(out, "petstore") {
		t.Errorf("error event output missing prefix, got: %q", out)
	}
	if !strings.Contains(out, "mock error") {
		t.Errorf("error event output missing error text, got: %q", out)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.PrintSummary(&sync.RunResult{
		Sources:    3,
		Downloaded: 2,
		Skipped:    1,
	})

	out := buf.String()
	if !strings.Contains(out, "fetch complete") {
		t.Errorf("summary missing 'fetch complete', got: %q", out)
	}
	if !strings.Contains(out, "3 spec(s)") {
		t.Errorf("summary missing spec count, got: %q", out)
	}
}

func TestPrintSummaryDryRun(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, true)

	p.PrintSummary(&sync.RunResult{
		Sources:    2,
		Downloaded: 2,
	})

	out := buf.String()
	if !strings.Contains(out, "dry-run complete") {
		t.Errorf("dry-run summary missing label, got: %q", out)
	}
	if !strings.Contains(out, "no files were written") {
		t.Errorf("dry-run summary missing disclaimer, got: %q", out)
	}
}

func TestPrintSummaryWithErrors(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.PrintSummary(&sync.RunResult{
		Sources: 3,
		Errors:  2,
	})

	out := buf.String()
	if !strings.Contains(out, "2 failed") {
		t.Errorf("summary missing error count, got: %q", out)
	}
}

func TestPrintSummaryNilResult(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.PrintSummary(nil)

	if buf.Len() != 0 {
		t.Errorf("expected no output for nil result, got: %q", buf.String())
	}
}
