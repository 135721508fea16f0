package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rmorlok/syncstore/internal/database"
	"github.com/rmorlok/syncstore/internal/routes"
)

type Output[T any] interface {
	Emit(T)
	EmitAll([]T)
	Done()
}

// jsonOutput streams values as a JSON array, or a single object when isSingle is set.
type jsonOutput[T any] struct {
	w           io.Writer
	isSingle    bool
	hasPrevious bool
}

func (o *jsonOutput[T]) EmitAll(vs []T) {
	for _, v := range vs {
		o.Emit(v)
	}
}

func (o *jsonOutput[T]) Emit(v T) {
	indent := ""
	if !o.isSingle {
		indent = "  "
		if !o.hasPrevious {
			fmt.Fprint(o.w, "[\n")
		} else {
			fmt.Fprint(o.w, ",\n")
		}
	}

	formatted, _ := json.MarshalIndent(v, indent, "  ")
	fmt.Fprint(o.w, indent+string(formatted))
	o.hasPrevious = true
}

func (o *jsonOutput[T]) Done() {
	if o.isSingle {
		fmt.Fprintln(o.w)
		return
	}

	if o.hasPrevious {
		fmt.Fprint(o.w, "\n]\n")
	} else {
		fmt.Fprintln(o.w, "[]")
	}
}

func OutputSingle[T any](w io.Writer) Output[T] {
	return &jsonOutput[T]{w: w, isSingle: true}
}

func OutputMultiple[T any](w io.Writer) Output[T] {
	return &jsonOutput[T]{w: w}
}

// connectionTable prints one line per connection with a relative last sync time.
type connectionTable struct {
	w   io.Writer
	now time.Time
}

func (o *connectionTable) EmitAll(vs []routes.ConnectionJson) {
	for _, v := range vs {
		o.Emit(v)
	}
}

func (o *connectionTable) Emit(c routes.ConnectionJson) {
	lastSync := color.HiBlackString("never")
	if c.LatestSyncJobCreatedAt != nil {
		lastSync = humanize.RelTime(*c.LatestSyncJobCreatedAt, o.now, "ago", "from now")
	}

	fmt.Fprintf(
		o.w,
		"%s  %-32s %-24s -> %-24s %-10s %s\n",
		c.Id,
		c.Name,
		c.Source.Name,
		c.Destination.Name,
		jobStatusString(c.LatestSyncJobStatus),
		lastSync,
	)
}

func (o *connectionTable) Done() {}

func jobStatusString(s *database.JobStatus) string {
	if s == nil {
		return color.HiBlackString("%-10s", "-")
	}

	padded := fmt.Sprintf("%-10s", strings.ToLower(string(*s)))
	switch *s {
	case database.JobStatusSucceeded:
		return color.GreenString(padded)
	case database.JobStatusFailed, database.JobStatusIncomplete:
		return color.RedString(padded)
	case database.JobStatusRunning, database.JobStatusPending:
		return color.YellowString(padded)
	default:
		return padded
	}
}

func printStatusCounts(w io.Writer, counts *database.ConnectionStatusCounts) {
	row := func(label string, n int, c func(format string, a ...interface{}) string) {
		fmt.Fprintf(w, "%-12s %s\n", label, c("%s", humanize.Comma(int64(n))))
	}

	row("running", counts.Running, color.YellowString)
	row("healthy", counts.Healthy, color.GreenString)
	row("failed", counts.Failed, color.RedString)
	row("paused", counts.Paused, color.HiBlackString)
	row("not synced", counts.NotSynced, color.HiBlackString)
}
