package profiler

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Profiler records execution times for pipeline stages in the order they
// were first seen.
type Profiler struct {
	mu    sync.Mutex
	order []string
	times map[string][]time.Duration
}

// New creates an empty profiler.
func New() *Profiler {
	return &Profiler{times: make(map[string][]time.Duration)}
}

// Timer is one in-flight stage measurement.
type Timer struct {
	profiler *Profiler
	name     string
	start    time.Time
}

// Start begins timing a stage.
func (p *Profiler) Start(name string) *Timer {
	return &Timer{profiler: p, name: name, start: time.Now()}
}

// Stop records the elapsed time and returns it.
func (t *Timer) Stop() time.Duration {
	duration := time.Since(t.start)
	t.profiler.Record(t.name, duration)
	return duration
}

// Record appends a measured duration for a stage.
func (p *Profiler) Record(name string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, seen := p.times[name]; !seen {
		p.order = append(p.order, name)
	}
	p.times[name] = append(p.times[name], duration)
}

// Stats summarizes one stage.
type Stats struct {
	Name    string
	Count   int
	Total   time.Duration
	Average time.Duration
}

// AllStats returns per-stage summaries in first-seen order.
func (p *Profiler) AllStats() []Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := make([]Stats, 0, len(p.order))
	for _, name := range p.order {
		times := p.times[name]
		var total time.Duration
		for _, t := range times {
			total += t
		}
		s := Stats{Name: name, Count: len(times), Total: total}
		if s.Count > 0 {
			s.Average = total / time.Duration(s.Count)
		}
		stats = append(stats, s)
	}
	return stats
}

// PrintReport writes a formatted stage timing table.
func (p *Profiler) PrintReport(w io.Writer) {
	stats := p.AllStats()
	if len(stats) == 0 {
		fmt.Fprintln(w, "No timing data available")
		return
	}

	fmt.Fprintf(w, "⏱️  Stage Timings\n")
	fmt.Fprintf(w, "────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "%-24s %8s %10s %10s\n", "Stage", "Count", "Total", "Avg")
	for _, stat := range stats {
		fmt.Fprintf(w, "%-24s %8d %10s %10s\n",
			stat.Name, stat.Count, formatDuration(stat.Total), formatDuration(stat.Average))
	}
	fmt.Fprintf(w, "────────────────────────────────────────────────\n")
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}
