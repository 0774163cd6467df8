package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/interlinkedhq/interlinked/core/webinar"
)

type webinarRepository struct {
	db *webinarTable
}

var _ webinar.Repository = (*webinarRepository)(nil) // interface compliance check

func NewWebinarRepository(db *DB) *webinarRepository {
	return &webinarRepository{db: db.webinar}
}

func (repo *webinarRepository) CreateRegistration(ctx context.Context, reg webinar.Registration) (webinar.Registration, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	reg.ID = uuid.New().String()
	repo.db.table = append(repo.db.table, reg)
	return reg, nil
}

func (repo *webinarRepository) QueryAllRegistrations(ctx context.Context) ([]webinar.Registration, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// newest first
	regs := make([]webinar.Registration, 0, len(repo.db.table))
	for i := len(repo.db.table) - 1; i >= 0; i-- {
		regs = append(regs, repo.db.table[i])
	}
	return regs, nil
}
