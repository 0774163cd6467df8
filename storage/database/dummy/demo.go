package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/interlinkedhq/interlinked/core/demo"
)

type demoRepository struct {
	db *demoTable
}

var _ demo.Repository = (*demoRepository)(nil) // interface compliance check

func NewDemoRepository(db *DB) *demoRepository {
	return &demoRepository{db: db.demo}
}

func (repo *demoRepository) CreateBooking(ctx context.Context, booking demo.Booking) (demo.Booking, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	booking.ID = uuid.New().String()
	repo.db.table = append(repo.db.table, booking)
	return booking, nil
}

func (repo *demoRepository) QueryAllBookings(ctx context.Context) ([]demo.Booking, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// newest first
	bookings := make([]demo.Booking, 0, len(repo.db.table))
	for i := len(repo.db.table) - 1; i >= 0; i-- {
		bookings = append(bookings, repo.db.table[i])
	}
	return bookings, nil
}
