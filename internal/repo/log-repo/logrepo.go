package logrepo

import (
	"context"
	"sync"
	"time"

	"github.com/avoronin/gameshop/internal/domain"
)

// Repository is the append-only action log behind the admin view. Entries
// live for the process lifetime only and are never trimmed.
type Repository struct {
	mu      sync.Mutex
	nextID  int64
	entries []domain.LogEntry
}

func New() *Repository {
	return &Repository{
		nextID: 1,
	}
}

// Append records an action, newest first.
func (r *Repository) Append(_ context.Context, action, detail string) domain.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := domain.LogEntry{
		ID:     r.nextID,
		Time:   time.Now(),
		Action: action,
		Detail: detail,
	}
	r.nextID++
	r.entries = append([]domain.LogEntry{entry}, r.entries...)
	return entry
}

// List returns a snapshot of all entries, newest first.
func (r *Repository) List(_ context.Context) []domain.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]domain.LogEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
