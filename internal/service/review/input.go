package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/domain"
)

// ProposeInput holds the parameters for filing a proposal.
type ProposeInput struct {
	Target          domain.EntityRef
	Message         string
	SuggestedReward float64
}

// Validate checks all fields and collects all errors.
func (i *ProposeInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, i.Target.FieldErrors("target")...)
	if i.Message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if len(i.Message) > 5000 {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long (max 5000)"})
	}
	if i.SuggestedReward < 0 {
		errs = append(errs, domain.FieldError{Field: "suggested_reward", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// IssueBountyInput holds the parameters for issuing a standalone bounty.
type IssueBountyInput struct {
	Target     domain.EntityRef
	TypeID     *uuid.UUID
	Reward     float64
	DateExpire *time.Time
}

// Validate checks all fields and collects all errors.
func (i *IssueBountyInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, i.Target.FieldErrors("target")...)
	if i.Reward < 0 {
		errs = append(errs, domain.FieldError{Field: "reward", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// IssueForProposalInput holds the parameters for fulfilling a proposal with
// a bounty.
type IssueForProposalInput struct {
	ProposalID uuid.UUID
	TypeID     *uuid.UUID
	Reward     float64
	DateExpire *time.Time
}

// Validate checks all fields and collects all errors.
func (i *IssueForProposalInput) Validate() error {
	var errs []domain.FieldError

	if i.ProposalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "proposal_id", Message: "required"})
	}
	if i.Reward < 0 {
		errs = append(errs, domain.FieldError{Field: "reward", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
