// Package search projects domain entities into flat documents for the
// external search index and ships them to it asynchronously.
package search

import (
	"github.com/listforge/listforge-backend/internal/domain"
)

// Document is the flat, index-ready form of an entity. The "id" field is
// always present and keys the document within its collection.
type Document map[string]any

// Projections are declared as static field → extractor tables so that the
// indexed shape of each entity kind is visible in one place.

var listFields = []struct {
	field   string
	extract func(l *domain.List) any
}{
	{"id", func(l *domain.List) any { return l.ID.String() }},
	{"title", func(l *domain.List) any { return l.Title }},
	{"description", func(l *domain.List) any { return deref(l.Description) }},
	{"topic_id", func(l *domain.List) any {
		if l.TopicID == nil {
			return ""
		}
		return l.TopicID.String()
	}},
	{"status", func(l *domain.List) any { return string(l.Status) }},
	{"active", func(l *domain.List) any { return l.Active }},
	{"version", func(l *domain.List) any { return int32(l.Version) }},
	{"created_at", func(l *domain.List) any { return l.CreatedAt.Unix() }},
	{"suggest", func(l *domain.List) any { return l.Title }},
}

var topicFields = []struct {
	field   string
	extract func(n *domain.TopicNode) any
}{
	{"id", func(n *domain.TopicNode) any { return n.ID.String() }},
	{"name", func(n *domain.TopicNode) any { return n.Name }},
	{"description", func(n *domain.TopicNode) any { return deref(n.Description) }},
	{"created_at", func(n *domain.TopicNode) any { return n.CreatedAt.Unix() }},
	{"suggest", func(n *domain.TopicNode) any { return n.Name }},
}

// ProjectList maps a list to its index document. Total: defined for every
// list regardless of status, so callers decide what to index.
func ProjectList(l *domain.List) Document {
	doc := make(Document, len(listFields))
	for _, f := range listFields {
		doc[f.field] = f.extract(l)
	}
	return doc
}

// ProjectTopic maps a topic node to its index document.
func ProjectTopic(n *domain.TopicNode) Document {
	doc := make(Document, len(topicFields))
	for _, f := range topicFields {
		doc[f.field] = f.extract(n)
	}
	return doc
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
