package topicgraph

import (
	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// CreateNodeInput holds the parameters for creating a topic node.
type CreateNodeInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i *CreateNodeInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}
	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateEdgeInput holds the parameters for linking a child topic under a parent.
type CreateEdgeInput struct {
	ParentID    uuid.UUID
	ChildID     uuid.UUID
	Description *string
}

// Validate checks all fields and collects all errors.
func (i *CreateEdgeInput) Validate() error {
	var errs []domain.FieldError

	if i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	}
	if i.ChildID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "child_id", Message: "required"})
	}
	if i.ParentID != uuid.Nil && i.ParentID == i.ChildID {
		errs = append(errs, domain.FieldError{Field: "child_id", Message: "must differ from parent_id"})
	}
	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
