package waitlist

import (
	"sort"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/interlinkedhq/interlinked/core"
)

// Tiers a prospect can register interest in.
const (
	TierPeasant  = "peasant"
	TierKnight   = "knight"
	TierRoyal    = "royal"
	TierAscended = "ascended"
)

var Tiers = []string{TierPeasant, TierKnight, TierRoyal, TierAscended}

var (
	allTiersTag  = "alltiers"
	allTiersText = "invalid tier"
)

// Entry is a stored waitlist signup.
type Entry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Purpose      string    `json:"purpose"`
	BusinessURL  string    `json:"business_url,omitempty"`
	TierInterest string    `json:"tier_interest,omitempty"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

// NewEntry contains information needed to join the waitlist.
type NewEntry struct {
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Purpose      string `json:"purpose" validate:"required"`
	BusinessURL  string `json:"business_url" validate:"omitempty,url"`
	TierInterest string `json:"tier_interest" validate:"omitempty,alltiers"`
}

func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.Name = core.CleanString(ne.Name)
	ne.Email = core.CleanString(ne.Email, true /* lower */)
	ne.Phone = core.CleanString(ne.Phone)
	ne.Purpose = core.CleanString(ne.Purpose)
	ne.BusinessURL = core.CleanString(ne.BusinessURL)
	ne.TierInterest = core.CleanString(ne.TierInterest, true /* lower */)
	return validate.Struct(ne)
}

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	sort.Strings(Tiers)
	_ = validate.RegisterValidation(allTiersTag, allTiersValidation)
	core.RegisterCustomTranslation(validate, translator, allTiersTag, allTiersText)
}

// allTiersValidation checks that the provided tier is in Tiers
func allTiersValidation(fl validator.FieldLevel) bool {
	tier := fl.Field().String()
	idx := sort.SearchStrings(Tiers, tier)
	return idx < len(Tiers) && Tiers[idx] == tier
}
