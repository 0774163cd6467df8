package waitlist

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("waitlist entry not found")

type (
	Repository interface {
		CreateEntry(ctx context.Context, entry Entry) (Entry, error)
		// QueryAllEntries returns entries newest first.
		QueryAllEntries(ctx context.Context) ([]Entry, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, ne NewEntry) (Entry, error)
		QueryAll(ctx context.Context) ([]Entry, error)
	}

	service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*service)(nil)

func NewService(repo Repository) *service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	entry := Entry{
		Name:         ne.Name,
		Email:        ne.Email,
		Phone:        ne.Phone,
		Purpose:      ne.Purpose,
		BusinessURL:  ne.BusinessURL,
		TierInterest: ne.TierInterest,
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateEntry(ctx, entry)
}

func (svc *service) QueryAll(ctx context.Context) ([]Entry, error) {
	return svc.repo.QueryAllEntries(ctx)
}
