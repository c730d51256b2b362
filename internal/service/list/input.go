package list

import (
	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// CreateInput holds the parameters for creating a draft list.
type CreateInput struct {
	Title       string
	Description *string
	TopicID     *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 500)"})
	}
	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateContentInput holds the parameters for rewriting a draft's content.
type UpdateContentInput struct {
	ListID      uuid.UUID
	Title       string
	Description *string
	TopicID     *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *UpdateContentInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 500)"})
	}
	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddItemInput holds the parameters for appending an item to a draft.
type AddItemInput struct {
	ListID      uuid.UUID
	Title       string
	Description *string
	DeepDive    *string
}

// Validate checks all fields and collects all errors.
func (i *AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 500)"})
	}
	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}
	if i.DeepDive != nil && len(*i.DeepDive) > 20000 {
		errs = append(errs, domain.FieldError{Field: "deep_dive", Message: "too long (max 20000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateItemInput holds the parameters for rewriting an item of a draft.
type UpdateItemInput struct {
	ItemID      uuid.UUID
	Title       string
	Description *string
	DeepDive    *string
	Active      bool
}

// Validate checks all fields and collects all errors.
func (i *UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReorderItemsInput holds the full new ordering of a draft's items.
type ReorderItemsInput struct {
	ListID  uuid.UUID
	ItemIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ReorderItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if len(i.ItemIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "item_ids", Message: "required (at least 1)"})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.ItemIDs))
	for _, id := range i.ItemIDs {
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "item_ids", Message: "duplicate id " + id.String()})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddCommentInput holds the parameters for commenting on a list.
type AddCommentInput struct {
	ListID  uuid.UUID
	Message string
}

// Validate checks all fields and collects all errors.
func (i *AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.Message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if len(i.Message) > 5000 {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SearchInput holds the public search parameters. TopicName, when set, is
// resolved to a topic and the filter covers that topic's whole subtree.
type SearchInput struct {
	TitleSubstring string
	TopicName      string
	Limit          int
}
