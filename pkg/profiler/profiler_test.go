package profiler

import (
	"strings"
	"testing"
	"time"
)

func TestRecordAndStats(t *testing.T) {
	p := New()
	p.Record("load corpus", 10*time.Millisecond)
	p.Record("train", 30*time.Millisecond)
	p.Record("train", 50*time.Millisecond)

	stats := p.AllStats()
	if len(stats) != 2 {
		t.Fatalf("AllStats returned %d stages, expected 2", len(stats))
	}
	if stats[0].Name != "load corpus" || stats[1].Name != "train" {
		t.Errorf("stage order = %s, %s, expected first-seen order", stats[0].Name, stats[1].Name)
	}
	if stats[1].Count != 2 {
		t.Errorf("train count = %d, expected 2", stats[1].Count)
	}
	if stats[1].Total != 80*time.Millisecond {
		t.Errorf("train total = %v, expected 80ms", stats[1].Total)
	}
	if stats[1].Average != 40*time.Millisecond {
		t.Errorf("train average = %v, expected 40ms", stats[1].Average)
	}
}

func TestTimer(t *testing.T) {
	p := New()
	timer := p.Start("stage")
	d := timer.Stop()

	if d < 0 {
		t.Errorf("negative duration %v", d)
	}
	if stats := p.AllStats(); len(stats) != 1 || stats[0].Count != 1 {
		t.Error("timer did not record its stage")
	}
}

func TestPrintReport(t *testing.T) {
	p := New()

	var sb strings.Builder
	p.PrintReport(&sb)
	if !strings.Contains(sb.String(), "No timing data") {
		t.Error("empty profiler should report no timing data")
	}

	p.Record("train", time.Millisecond)
	sb.Reset()
	p.PrintReport(&sb)
	if !strings.Contains(sb.String(), "train") {
		t.Error("report missing recorded stage")
	}
}
