// Package planlog persists planning decisions for later inspection.
package planlog

import (
	"context"
	"fmt"
	"time"

	"github.com/sanjithdevineni/AoA-Project-1/pkg/export"
)

// Record captures one planning request and its outcome.
type Record struct {
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Request   export.Request `json:"request"`
	Result    export.Result  `json:"result"`
}

// Query defines filters for retrieving records.
type Query struct {
	Start     time.Time
	End       time.Time
	RequestID string
	Source    string
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// Open creates the store selected by backend, "jsonl" or "sqlite".
func Open(backend, path string) (Store, error) {
	switch backend {
	case "jsonl":
		return NewJSONLStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown backend %s", backend)
	}
}

func (q Query) matches(r Record) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.RequestID != "" && r.Request.RequestID != q.RequestID {
		return false
	}
	if q.Source != "" && r.Source != q.Source {
		return false
	}
	return true
}
