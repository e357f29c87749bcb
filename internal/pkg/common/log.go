package common

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// LogWriter buffers trace lines and errors for one pass run and flushes
// them together at the end, the way the teacher's cmd/nar accumulates a
// LogWriter across the whole compile before printing anything (see
// common.LogWriter's Err/Trace/Flush usage there). Every record is
// stamped with the run's id so concurrent runs' interleaved stderr output
// (e.g. under a test harness invoking the driver repeatedly) stays
// attributable.
type LogWriter struct {
	runID   uuid.UUID
	records []string
	errs    []error
}

func NewLogWriter() *LogWriter {
	return &LogWriter{runID: uuid.New()}
}

func (l *LogWriter) RunID() uuid.UUID {
	if l == nil {
		return uuid.Nil
	}
	return l.runID
}

// Trace records one step of the pass. A nil receiver is a silent no-op,
// so call sites never need to check whether a LogWriter was supplied.
func (l *LogWriter) Trace(format string, args ...any) {
	if l == nil {
		return
	}
	l.records = append(l.records, fmt.Sprintf("[%s] %s", l.runID, fmt.Sprintf(format, args...)))
}

func (l *LogWriter) Err(err error) {
	if l == nil || err == nil {
		return
	}
	l.errs = append(l.errs, err)
}

func (l *LogWriter) HasErrors() bool {
	return l != nil && len(l.errs) > 0
}

func (l *LogWriter) Errors() []error {
	if l == nil {
		return nil
	}
	return l.errs
}

// Flush writes every buffered trace line, then every buffered error, to w.
func (l *LogWriter) Flush(w io.Writer) {
	if l == nil {
		return
	}
	for _, r := range l.records {
		fmt.Fprintln(w, r)
	}
	for _, e := range l.errs {
		fmt.Fprintln(w, e)
	}
}
