// Package progress renders a single-line terminal progress bar driven
// by delta updates, the same shape of callback sieve.Config.Progress
// expects.
package progress

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Bar is a terminal progress bar that redraws itself on stderr each
// time it's updated. All methods are safe for concurrent use, since
// sieve's parallel path reports progress from multiple goroutines at
// once.
type Bar struct {
	total       int64
	completed   int64
	width       int
	startTime   time.Time
	description string
	mu          sync.Mutex
}

// NewBar creates a bar for total units of work.
func NewBar(total int64, description string) *Bar {
	return &Bar{
		total:       total,
		width:       40,
		description: description,
		startTime:   time.Now(),
	}
}

// Add advances the bar by delta units and redraws it.
func (b *Bar) Add(delta int64) {
	b.mu.Lock()
	b.completed += delta
	b.render()
	b.mu.Unlock()
}

// SetTotal changes the bar's total, useful when the real unit count
// isn't known until after the bar is created.
func (b *Bar) SetTotal(total int64) {
	b.mu.Lock()
	b.total = total
	b.mu.Unlock()
}

// Completed reports how many units have been added so far.
func (b *Bar) Completed() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.completed
}

// Finish snaps the bar to 100% and emits a trailing newline.
func (b *Bar) Finish() {
	b.mu.Lock()
	b.completed = b.total
	b.render()
	fmt.Fprintln(os.Stderr)
	b.mu.Unlock()
}

func (b *Bar) render() {
	if b.total == 0 {
		return
	}

	percent := float64(b.completed) / float64(b.total)
	if percent > 1.0 {
		percent = 1.0
	}
	filled := int(percent * float64(b.width))

	elapsed := time.Since(b.startTime)
	var rateStr string
	if elapsed.Seconds() > 0 {
		rateStr = FormatNumber(int64(float64(b.completed)/elapsed.Seconds())) + "/s"
	} else {
		rateStr = "-/s"
	}

	fmt.Fprintf(os.Stderr, "\r%s: [%s%s] %3.0f%% | %s/%s | %s",
		b.description,
		strings.Repeat("=", filled),
		strings.Repeat(" ", b.width-filled),
		percent*100,
		FormatNumber(b.completed),
		FormatNumber(b.total),
		rateStr)
}

// DefaultWorkers returns a reasonable default for Config.Workers when
// the caller hasn't picked one.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// FormatNumber renders n with a K/M/B suffix once it's large enough
// that the raw digits would crowd the bar.
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.2fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
