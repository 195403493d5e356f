package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/infrastructure/db/memory"
)

func TestLogRepository_AppendPrependsNewestFirst(t *testing.T) {
	repos := New(memory.NewStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repos.Logs.Append(ctx, &domain.LogEntry{
			Type:        domain.LogTask,
			Action:      "create task",
			Description: fmt.Sprintf("entry %d", i),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := repos.Logs.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Description != "entry 2" || entries[2].Description != "entry 0" {
		t.Errorf("expected newest-first order, got %+v", entries)
	}
	if entries[0].ID == "" || entries[0].Timestamp.IsZero() {
		t.Error("expected id and timestamp to be assigned")
	}
}

func TestLogRepository_RingBound(t *testing.T) {
	repos := New(memory.NewStore())
	ctx := context.Background()

	for i := 0; i < domain.MaxLogEntries+1; i++ {
		err := repos.Logs.Append(ctx, &domain.LogEntry{
			Type:        domain.LogTask,
			Action:      "tick",
			Description: fmt.Sprintf("entry %d", i),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repos.Logs.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != domain.MaxLogEntries {
		t.Fatalf("expected ring bound %d, got %d", domain.MaxLogEntries, len(entries))
	}
	// The newest entry survives at the head; the oldest was evicted.
	if entries[0].Description != fmt.Sprintf("entry %d", domain.MaxLogEntries) {
		t.Errorf("expected newest entry at head, got %s", entries[0].Description)
	}
	if entries[len(entries)-1].Description != "entry 1" {
		t.Errorf("expected entry 0 evicted, tail is %s", entries[len(entries)-1].Description)
	}
}
