package domain

// ListStatus represents a list's position in the editorial lifecycle.
type ListStatus string

const (
	ListStatusDraft     ListStatus = "DRAFT"
	ListStatusSubmitted ListStatus = "SUBMITTED"
	ListStatusPublished ListStatus = "PUBLISHED"
)

func (s ListStatus) String() string { return string(s) }

func (s ListStatus) IsValid() bool {
	switch s {
	case ListStatusDraft, ListStatusSubmitted, ListStatusPublished:
		return true
	}
	return false
}

// EntityKind identifies the kind of domain entity a polymorphic reference
// (Contribution, Bounty, Proposal target) points at.
type EntityKind string

const (
	EntityKindList     EntityKind = "LIST"
	EntityKindListItem EntityKind = "LIST_ITEM"
	EntityKindTopic    EntityKind = "TOPIC"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindList, EntityKindListItem, EntityKindTopic:
		return true
	}
	return false
}
