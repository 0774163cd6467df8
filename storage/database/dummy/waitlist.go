package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/interlinkedhq/interlinked/core/waitlist"
)

type waitlistRepository struct {
	db *waitlistTable
}

var _ waitlist.Repository = (*waitlistRepository)(nil) // interface compliance check

func NewWaitlistRepository(db *DB) *waitlistRepository {
	return &waitlistRepository{db: db.waitlist}
}

func (repo *waitlistRepository) CreateEntry(ctx context.Context, entry waitlist.Entry) (waitlist.Entry, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	entry.ID = uuid.New().String()
	repo.db.table = append(repo.db.table, entry)
	return entry, nil
}

func (repo *waitlistRepository) QueryAllEntries(ctx context.Context) ([]waitlist.Entry, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// newest first
	entries := make([]waitlist.Entry, 0, len(repo.db.table))
	for i := len(repo.db.table) - 1; i >= 0; i-- {
		entries = append(entries, repo.db.table[i])
	}
	return entries, nil
}
