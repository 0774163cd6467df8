package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/interlinkedhq/interlinked/core/waitlist"
)

type dbWaitlistEntry struct {
	ID           string      `db:"id"`
	Name         string      `db:"name"`
	Email        string      `db:"email"`
	Phone        string      `db:"phone"`
	Purpose      string      `db:"purpose"`
	BusinessURL  null.String `db:"business_url"`
	TierInterest null.String `db:"tier_interest"`
	CreatedAt    time.Time   `db:"created_at"`
}

func (e dbWaitlistEntry) toEntry() waitlist.Entry {
	return waitlist.Entry{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Purpose:      e.Purpose,
		BusinessURL:  e.BusinessURL.String,
		TierInterest: e.TierInterest.String,
		CreatedAt:    e.CreatedAt,
	}
}

type waitlistRepository struct {
	db *sqlx.DB
}

var _ waitlist.Repository = (*waitlistRepository)(nil) // interface compliance check

func NewWaitlistRepository(db *sqlx.DB) *waitlistRepository {
	return &waitlistRepository{db: db}
}

func (repo waitlistRepository) CreateEntry(ctx context.Context, entry waitlist.Entry) (waitlist.Entry, error) {
	entry.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO waitlist_entry (id, name, email, phone, purpose, business_url, tier_interest, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.Name, entry.Email, entry.Phone, entry.Purpose,
		null.NewString(entry.BusinessURL, entry.BusinessURL != ""),
		null.NewString(entry.TierInterest, entry.TierInterest != ""),
		entry.CreatedAt,
	)
	if err != nil {
		return waitlist.Entry{}, errors.Wrap(err, "inserting waitlist entry")
	}
	return entry, nil
}

func (repo waitlistRepository) QueryAllEntries(ctx context.Context) ([]waitlist.Entry, error) {
	var dbEntries []dbWaitlistEntry
	err := repo.db.SelectContext(ctx, &dbEntries, `SELECT * FROM waitlist_entry ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying waitlist entries")
	}

	entries := make([]waitlist.Entry, 0, len(dbEntries))
	for _, e := range dbEntries {
		entries = append(entries, e.toEntry())
	}
	return entries, nil
}
