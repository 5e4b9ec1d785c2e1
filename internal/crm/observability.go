package crm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single CRM invocation.
type CallEvent struct {
	LeadTitle string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about CRM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes CRM call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] crm_lead title=%q latency_ms=%d status=%s\n",
		ts, event.LeadTitle, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
