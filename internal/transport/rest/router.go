package rest

import "net/http"

// Handlers bundles all REST handlers for router assembly.
type Handlers struct {
	Health *HealthHandler
	Lists  *ListHandler
	Topics *TopicHandler
	Review *ReviewHandler
	Person *PersonHandler
	Access *AccessHandler
}

// NewRouter builds the HTTP route table. Authentication and logging are
// applied outside, by the middleware chain.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// probes
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// lists
	mux.HandleFunc("POST /api/v1/lists", h.Lists.Create)
	mux.HandleFunc("GET /api/v1/lists", h.Lists.Search)
	mux.HandleFunc("GET /api/v1/lists/{id}", h.Lists.Get)
	mux.HandleFunc("PUT /api/v1/lists/{id}", h.Lists.Update)
	mux.HandleFunc("DELETE /api/v1/lists/{id}", h.Lists.Delete)
	mux.HandleFunc("POST /api/v1/lists/{id}/submit", h.Lists.Submit)
	mux.HandleFunc("POST /api/v1/lists/{id}/claim", h.Lists.Claim)
	mux.HandleFunc("POST /api/v1/lists/{id}/release", h.Lists.Release)
	mux.HandleFunc("POST /api/v1/lists/{id}/publish", h.Lists.Publish)
	mux.HandleFunc("POST /api/v1/lists/{id}/return", h.Lists.ReturnToDraft)
	mux.HandleFunc("POST /api/v1/lists/{id}/clone", h.Lists.Clone)
	mux.HandleFunc("PUT /api/v1/lists/{id}/active", h.Lists.SetActive)
	mux.HandleFunc("GET /api/v1/lists/{id}/items", h.Lists.Items)
	mux.HandleFunc("POST /api/v1/lists/{id}/items", h.Lists.AddItem)
	mux.HandleFunc("PUT /api/v1/lists/{id}/items/order", h.Lists.ReorderItems)
	mux.HandleFunc("PUT /api/v1/items/{id}", h.Lists.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/items/{id}", h.Lists.DeleteItem)
	mux.HandleFunc("GET /api/v1/lists/{id}/comments", h.Lists.Comments)
	mux.HandleFunc("POST /api/v1/lists/{id}/comments", h.Lists.AddComment)

	// topics
	mux.HandleFunc("POST /api/v1/topics", h.Topics.Create)
	mux.HandleFunc("GET /api/v1/topics", h.Topics.List)
	mux.HandleFunc("GET /api/v1/topics/{id}", h.Topics.Get)
	mux.HandleFunc("DELETE /api/v1/topics/{id}", h.Topics.Delete)
	mux.HandleFunc("POST /api/v1/topics/edges", h.Topics.CreateEdge)
	mux.HandleFunc("DELETE /api/v1/topics/{id}/edges/{childId}", h.Topics.DeleteEdge)
	mux.HandleFunc("GET /api/v1/topics/{id}/descendants", h.Topics.Descendants)
	mux.HandleFunc("GET /api/v1/topics/{id}/position", h.Topics.Position)

	// proposals and bounties
	mux.HandleFunc("POST /api/v1/proposals", h.Review.Propose)
	mux.HandleFunc("GET /api/v1/proposals", h.Review.OpenProposals)
	mux.HandleFunc("POST /api/v1/proposals/{id}/bounty", h.Review.IssueForProposal)
	mux.HandleFunc("POST /api/v1/bounties", h.Review.IssueBounty)
	mux.HandleFunc("GET /api/v1/bounties", h.Review.OpenBounties)
	mux.HandleFunc("POST /api/v1/bounties/{id}/claim", h.Review.Claim)
	mux.HandleFunc("DELETE /api/v1/bounties/{id}", h.Review.Deactivate)
	mux.HandleFunc("POST /api/v1/bounty-types", h.Review.CreateBountyType)

	// profiles and social graph
	mux.HandleFunc("GET /api/v1/me", h.Person.Me)
	mux.HandleFunc("PUT /api/v1/me", h.Person.UpdateMe)
	mux.HandleFunc("GET /api/v1/me/contributions", h.Person.Contributions)
	mux.HandleFunc("GET /api/v1/persons/{id}", h.Person.Get)
	mux.HandleFunc("GET /api/v1/me/friends", h.Person.Friends)
	mux.HandleFunc("PUT /api/v1/me/friends/{id}", h.Person.AddFriend)
	mux.HandleFunc("DELETE /api/v1/me/friends/{id}", h.Person.RemoveFriend)
	mux.HandleFunc("GET /api/v1/me/favorites", h.Person.Favorites)
	mux.HandleFunc("PUT /api/v1/me/favorites/{id}", h.Person.AddFavorite)
	mux.HandleFunc("DELETE /api/v1/me/favorites/{id}", h.Person.RemoveFavorite)
	mux.HandleFunc("POST /api/v1/groups", h.Person.CreateGroup)
	mux.HandleFunc("PUT /api/v1/groups/{id}/members", h.Person.JoinGroup)
	mux.HandleFunc("DELETE /api/v1/groups/{id}/members", h.Person.LeaveGroup)

	// subscriptions and access
	mux.HandleFunc("POST /api/v1/subscriptions", h.Access.Grant)
	mux.HandleFunc("DELETE /api/v1/subscriptions/{id}", h.Access.Revoke)
	mux.HandleFunc("GET /api/v1/access/{topicId}", h.Access.Resolve)

	return mux
}
