package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Save records an entry and returns it with its row ID.
func (s *historyStore) Save(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	if entry.SearchedAt.IsZero() {
		entry.SearchedAt = time.Now()
	}
	entry.SearchedAt = entry.SearchedAt.UTC()

	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO search_history (term, entity, result_limit, outcome, result_count, request_id, searched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.Term, string(entry.Entity), entry.Limit, string(entry.Outcome),
		entry.Count, entry.RequestID, entry.SearchedAt.UnixNano())
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("saving history entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("reading history entry id: %w", err)
	}
	entry.ID = id
	return entry, nil
}

// Recent returns up to limit entries, newest first.
func (s *historyStore) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, term, entity, result_limit, outcome, result_count, request_id, searched_at
		FROM search_history
		ORDER BY searched_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			entry      domain.HistoryEntry
			entity     string
			outcome    string
			searchedAt int64
		)
		if err := rows.Scan(&entry.ID, &entry.Term, &entity, &entry.Limit,
			&outcome, &entry.Count, &entry.RequestID, &searchedAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entry.Entity = domain.EntityKind(entity)
		entry.Outcome = domain.SearchOutcome(outcome)
		entry.SearchedAt = time.Unix(0, searchedAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}

// Clear removes all entries.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
