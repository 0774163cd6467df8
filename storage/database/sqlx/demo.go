package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/interlinkedhq/interlinked/core/demo"
)

type dbDemoBooking struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Phone        string    `db:"phone"`
	Email        string    `db:"email"`
	BusinessName string    `db:"business_name"`
	Purpose      string    `db:"purpose"`
	Date         string    `db:"date"`
	Time         string    `db:"time"`
	CreatedAt    time.Time `db:"created_at"`
}

func (b dbDemoBooking) toBooking() demo.Booking {
	return demo.Booking{
		ID:           b.ID,
		Name:         b.Name,
		Phone:        b.Phone,
		Email:        b.Email,
		BusinessName: b.BusinessName,
		Purpose:      b.Purpose,
		Date:         b.Date,
		Time:         b.Time,
		CreatedAt:    b.CreatedAt,
	}
}

type demoRepository struct {
	db *sqlx.DB
}

var _ demo.Repository = (*demoRepository)(nil) // interface compliance check

func NewDemoRepository(db *sqlx.DB) *demoRepository {
	return &demoRepository{db: db}
}

func (repo demoRepository) CreateBooking(ctx context.Context, booking demo.Booking) (demo.Booking, error) {
	booking.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO demo_booking (id, name, phone, email, business_name, purpose, date, time, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		booking.ID, booking.Name, booking.Phone, booking.Email,
		booking.BusinessName, booking.Purpose, booking.Date, booking.Time, booking.CreatedAt,
	)
	if err != nil {
		return demo.Booking{}, errors.Wrap(err, "inserting demo booking")
	}
	return booking, nil
}

func (repo demoRepository) QueryAllBookings(ctx context.Context) ([]demo.Booking, error) {
	var dbBookings []dbDemoBooking
	err := repo.db.SelectContext(ctx, &dbBookings, `SELECT * FROM demo_booking ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying demo bookings")
	}

	bookings := make([]demo.Booking, 0, len(dbBookings))
	for _, b := range dbBookings {
		bookings = append(bookings, b.toBooking())
	}
	return bookings, nil
}
