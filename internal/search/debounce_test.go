package search

import (
	"sync"
	"testing"
	"time"
)

// recorder collects emissions across goroutines.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) emit(v string) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerCollapsesRapidEdits(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(30*time.Millisecond, rec.emit)
	defer d.Stop()

	// Character-by-character typing within the quiet window.
	for _, prefix := range []string{"S", "Se", "Sen", "Senior Developer"} {
		d.Push(prefix)
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "Senior Developer" {
		t.Errorf("emissions = %v, want exactly [Senior Developer]", got)
	}
}

func TestDebouncerSuppressesUnchangedValue(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(10*time.Millisecond, rec.emit)
	defer d.Stop()

	d.Push("go")
	time.Sleep(50 * time.Millisecond)
	d.Push("go")
	time.Sleep(50 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 1 {
		t.Errorf("emissions = %v, want a single emission", got)
	}
}

func TestDebouncerEmitsDistinctValues(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(10*time.Millisecond, rec.emit)
	defer d.Stop()

	d.Push("go")
	time.Sleep(50 * time.Millisecond)
	d.Push("rust")
	time.Sleep(50 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "go" || got[1] != "rust" {
		t.Errorf("emissions = %v, want [go rust]", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.emit)

	d.Push("doomed")
	d.Stop()
	time.Sleep(60 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("emissions after Stop = %v, want none", got)
	}
}

func TestDebouncerFlush(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(time.Hour, rec.emit)
	defer d.Stop()

	// Flush with nothing pending is a no-op.
	d.Flush()
	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("emissions after empty flush = %v, want none", got)
	}

	d.Push("now")
	d.Flush()
	if got := rec.snapshot(); len(got) != 1 || got[0] != "now" {
		t.Errorf("emissions = %v, want [now]", got)
	}
}
