package planlog

import (
	"context"
	"testing"
	"time"
)

func TestSQLiteStore_PersistQuery(t *testing.T) {
	store, err := NewSQLiteStore("file:planlog_test.db?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	if err := store.Append(ctx, sampleRecord("r1", "cli", time.Unix(1000, 0))); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, sampleRecord("r2", "mqtt", time.Unix(2000, 0))); err != nil {
		t.Fatalf("append: %v", err)
	}

	out, err := store.Query(ctx, Query{RequestID: "r1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(out) != 1 || out[0].Request.RequestID != "r1" {
		t.Fatalf("expected r1, got %+v", out)
	}
	if out[0].Result.StopCount != 1 || out[0].Result.Stops[0] != 200 {
		t.Fatalf("result not persisted: %+v", out[0].Result)
	}

	out, err = store.Query(ctx, Query{Start: time.Unix(1500, 0), Source: "mqtt"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(out) != 1 || out[0].Request.RequestID != "r2" {
		t.Fatalf("filters failed: %+v", out)
	}
}
