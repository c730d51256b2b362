package person

import (
	"github.com/listforge/listforge-backend/internal/domain"
)

// ProfileInput holds the editable profile fields.
type ProfileInput struct {
	Degrees             *string
	JobTitle            *string
	PersonalDescription *string
}

// Validate checks all fields and collects all errors.
func (i *ProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Degrees != nil && len(*i.Degrees) > 500 {
		errs = append(errs, domain.FieldError{Field: "degrees", Message: "too long (max 500)"})
	}
	if i.JobTitle != nil && len(*i.JobTitle) > 200 {
		errs = append(errs, domain.FieldError{Field: "job_title", Message: "too long (max 200)"})
	}
	if i.PersonalDescription != nil && len(*i.PersonalDescription) > 5000 {
		errs = append(errs, domain.FieldError{Field: "personal_description", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
