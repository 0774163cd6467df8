package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/interlinkedhq/interlinked/core/webinar"
)

type dbWebinarRegistration struct {
	ID          string    `db:"id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	SessionDate string    `db:"session_date"`
	SessionTime string    `db:"session_time"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r dbWebinarRegistration) toRegistration() webinar.Registration {
	return webinar.Registration{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		SessionDate: r.SessionDate,
		SessionTime: r.SessionTime,
		CreatedAt:   r.CreatedAt,
	}
}

type webinarRepository struct {
	db *sqlx.DB
}

var _ webinar.Repository = (*webinarRepository)(nil) // interface compliance check

func NewWebinarRepository(db *sqlx.DB) *webinarRepository {
	return &webinarRepository{db: db}
}

func (repo webinarRepository) CreateRegistration(ctx context.Context, reg webinar.Registration) (webinar.Registration, error) {
	reg.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO webinar_registration (id, first_name, last_name, email, phone, session_date, session_time, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		reg.ID, reg.FirstName, reg.LastName, reg.Email, reg.Phone,
		reg.SessionDate, reg.SessionTime, reg.CreatedAt,
	)
	if err != nil {
		return webinar.Registration{}, errors.Wrap(err, "inserting webinar registration")
	}
	return reg, nil
}

func (repo webinarRepository) QueryAllRegistrations(ctx context.Context) ([]webinar.Registration, error) {
	var dbRegs []dbWebinarRegistration
	err := repo.db.SelectContext(ctx, &dbRegs, `SELECT * FROM webinar_registration ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying webinar registrations")
	}

	regs := make([]webinar.Registration, 0, len(dbRegs))
	for _, r := range dbRegs {
		regs = append(regs, r.toRegistration())
	}
	return regs, nil
}
