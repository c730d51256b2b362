package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityRef is a tagged polymorphic reference to an arbitrary domain entity.
// It replaces a dynamic untyped foreign key: the kind is a closed enum and
// every referenced kind has a loader registered by the consuming service.
type EntityRef struct {
	Kind EntityKind
	ID   uuid.UUID
}

// Validate checks that the reference carries a known kind and a non-nil id.
func (r EntityRef) Validate() error {
	var errs []FieldError
	if !r.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "unknown entity kind"})
	}
	if r.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// FieldErrors returns the reference's validation problems with field names
// prefixed by the given path, for embedding into a larger input validation.
func (r EntityRef) FieldErrors(prefix string) []FieldError {
	var errs []FieldError
	if !r.Kind.IsValid() {
		errs = append(errs, FieldError{Field: prefix + ".kind", Message: "unknown entity kind"})
	}
	if r.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: prefix + ".id", Message: "required"})
	}
	return errs
}

func (r EntityRef) String() string {
	return fmt.Sprintf("%s/%s", r.Kind, r.ID)
}
