package webinar

import (
	"context"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/interlinkedhq/interlinked/core"
)

var ErrNotFound = errors.New("webinar registration not found")

type (
	Repository interface {
		CreateRegistration(ctx context.Context, reg Registration) (Registration, error)
		// QueryAllRegistrations returns registrations newest first.
		QueryAllRegistrations(ctx context.Context) ([]Registration, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, nr NewRegistration) (Registration, error)
		QueryAll(ctx context.Context) ([]Registration, error)
	}

	service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

var _ ServiceInterface = (*service)(nil)

func NewService(repo Repository, mailSvc core.EmailService) *service {
	return &service{repo: repo, mailSvc: mailSvc}
}

func (svc *service) Create(ctx context.Context, nr NewRegistration) (Registration, error) {
	reg := Registration{
		FirstName:   nr.FirstName,
		LastName:    nr.LastName,
		Email:       nr.Email,
		Phone:       nr.Phone,
		SessionDate: nr.SessionDate,
		SessionTime: nr.SessionTime,
		CreatedAt:   time.Now().UTC(),
	}
	reg, err := svc.repo.CreateRegistration(ctx, reg)
	if err != nil {
		return Registration{}, err
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: reg.FirstName + " " + reg.LastName, Address: reg.Email}},
		Subject:      "You're registered!",
		TemplateName: "webinar-confirmation",
		TemplateData: struct {
			FirstName   string
			SessionDate string
			SessionTime string
		}{reg.FirstName, reg.SessionDate, reg.SessionTime},
	})
	return reg, nil
}

func (svc *service) QueryAll(ctx context.Context) ([]Registration, error) {
	return svc.repo.QueryAllRegistrations(ctx)
}
