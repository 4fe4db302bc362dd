package store

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	stats := trainedStats(t)
	path := filepath.Join(t.TempDir(), "model.db")

	ss, err := NewSQLiteStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer ss.Close()

	ctx := context.Background()
	if err := ss.Save(ctx, stats); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := ss.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assertStatsEqual(t, loaded, stats)
}

func TestSQLiteStoreSaveReplaces(t *testing.T) {
	stats := trainedStats(t)
	path := filepath.Join(t.TempDir(), "model.db")

	ss, err := NewSQLiteStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer ss.Close()

	ctx := context.Background()
	if err := ss.Save(ctx, stats); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := ss.Save(ctx, stats); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := ss.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertStatsEqual(t, loaded, stats)
}

func TestSQLiteStoreLoadEmpty(t *testing.T) {
	ss, err := NewSQLiteStore(filepath.Join(t.TempDir(), "empty.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer ss.Close()

	if _, err := ss.Load(context.Background()); err == nil {
		t.Error("expected error when no model is stored")
	}
}
