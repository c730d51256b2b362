package review

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/listforge/listforge-backend/internal/config"
	"github.com/listforge/listforge-backend/internal/domain"
	"github.com/listforge/listforge-backend/internal/service/access"
	"github.com/listforge/listforge-backend/pkg/ctxutil"
)

type testMocks struct {
	proposals     *proposalRepoMock
	bounties      *bountyRepoMock
	contributions *contributionRepoMock
	lists         *listGetterMock
	items         *itemGetterMock
	topics        *topicGetterMock
	access        *accessResolverMock
	tx            *txManagerMock
}

func defaultMocks() *testMocks {
	return &testMocks{
		proposals:     &proposalRepoMock{},
		bounties:      &bountyRepoMock{},
		contributions: &contributionRepoMock{},
		lists:         &listGetterMock{},
		items:         &itemGetterMock{},
		topics: &topicGetterMock{
			GetNodeFunc: func(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error) {
				return &domain.TopicNode{ID: id}, nil
			},
		},
		access: &accessResolverMock{
			ResolveFunc: func(ctx context.Context, userID, topicID uuid.UUID) (access.Grant, error) {
				return access.Grant{}, nil
			},
		},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService(m *testMocks) *Service {
	svc := NewService(
		slog.Default(),
		m.proposals,
		m.bounties,
		m.contributions,
		m.lists,
		m.items,
		m.topics,
		m.access,
		m.tx,
		config.CurationConfig{DefaultBountyTTL: 720 * time.Hour},
	)
	svc.now = fixedNow
	return svc
}

func editorAccess() *accessResolverMock {
	return &accessResolverMock{
		ResolveFunc: func(ctx context.Context, userID, topicID uuid.UUID) (access.Grant, error) {
			return access.Grant{CanRead: true, CanEdit: true}, nil
		},
	}
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func topicTarget() domain.EntityRef {
	return domain.EntityRef{Kind: domain.EntityKindTopic, ID: uuid.New()}
}

func TestPropose_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	m := defaultMocks()
	m.proposals.CreateFunc = func(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error) {
		created := *p
		created.ID = uuid.New()
		return &created, nil
	}
	svc := newTestService(m)

	p, err := svc.Propose(userCtx(userID), ProposeInput{
		Target:          topicTarget(),
		Message:         "this topic needs a starter list",
		SuggestedReward: 25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AuthorID != userID {
		t.Errorf("author: got %v, want %v", p.AuthorID, userID)
	}
	if p.IsFulfilled() {
		t.Error("new proposal reports fulfilled")
	}
}

func TestPropose_MissingTarget(t *testing.T) {
	t.Parallel()

	m := defaultMocks()
	m.topics.GetNodeFunc = func(ctx context.Context, id uuid.UUID) (*domain.TopicNode, error) {
		return nil, domain.ErrNotFound
	}
	svc := newTestService(m)

	_, err := svc.Propose(userCtx(uuid.New()), ProposeInput{Target: topicTarget(), Message: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPropose_InvalidTargetKind(t *testing.T) {
	t.Parallel()

	svc := newTestService(defaultMocks())

	_, err := svc.Propose(userCtx(uuid.New()), ProposeInput{
		Target:  domain.EntityRef{Kind: "PLANET", ID: uuid.New()},
		Message: "x",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestIssueBountyForProposal_Success(t *testing.T) {
	t.Parallel()

	editorID := uuid.New()
	proposal := &domain.Proposal{
		ID:       uuid.New(),
		Target:   topicTarget(),
		AuthorID: uuid.New(),
		Message:  "needs work",
	}

	m := defaultMocks()
	m.access = editorAccess()
	m.proposals.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
		cp := *proposal
		return &cp, nil
	}
	m.bounties.CreateFunc = func(ctx context.Context, b *domain.Bounty) (*domain.Bounty, error) {
		created := *b
		created.ID = uuid.New()
		return &created, nil
	}
	m.proposals.SetBountyFunc = func(ctx context.Context, id, bountyID uuid.UUID) (int64, error) {
		return 1, nil
	}
	svc := newTestService(m)

	b, err := svc.IssueBountyForProposal(userCtx(editorID), IssueForProposalInput{
		ProposalID: proposal.ID,
		Reward:     50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Target != proposal.Target {
		t.Errorf("bounty target: got %v, want proposal target %v", b.Target, proposal.Target)
	}
	if b.IssuerID == nil || *b.IssuerID != editorID {
		t.Errorf("issuer: got %v, want editor %v", b.IssuerID, editorID)
	}
	if b.DateExpire == nil {
		t.Fatal("expiry: got nil, want default TTL applied")
	}
	wantExpire := fixedNow().Add(720 * time.Hour)
	if !b.DateExpire.Equal(wantExpire) {
		t.Errorf("expiry: got %v, want %v", b.DateExpire, wantExpire)
	}

	links := m.proposals.SetBountyCalls()
	if len(links) != 1 || links[0][0] != proposal.ID {
		t.Errorf("SetBounty calls: got %v, want one for proposal", links)
	}
}

func TestIssueBountyForProposal_AlreadyFulfilled(t *testing.T) {
	t.Parallel()

	bountyID := uuid.New()
	proposal := &domain.Proposal{
		ID:       uuid.New(),
		Target:   topicTarget(),
		BountyID: &bountyID,
	}

	m := defaultMocks()
	m.access = editorAccess()
	m.proposals.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
		cp := *proposal
		return &cp, nil
	}
	svc := newTestService(m)

	_, err := svc.IssueBountyForProposal(userCtx(uuid.New()), IssueForProposalInput{ProposalID: proposal.ID, Reward: 10})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(m.bounties.CreateCalls()) != 0 {
		t.Errorf("bounty Create calls: got %d, want 0", len(m.bounties.CreateCalls()))
	}
}

func TestIssueBountyForProposal_LostFulfillmentRace(t *testing.T) {
	t.Parallel()

	proposal := &domain.Proposal{ID: uuid.New(), Target: topicTarget()}

	m := defaultMocks()
	m.access = editorAccess()
	m.proposals.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
		cp := *proposal
		return &cp, nil
	}
	m.bounties.CreateFunc = func(ctx context.Context, b *domain.Bounty) (*domain.Bounty, error) {
		created := *b
		created.ID = uuid.New()
		return &created, nil
	}
	m.proposals.SetBountyFunc = func(ctx context.Context, id, bountyID uuid.UUID) (int64, error) {
		// Another editor linked a bounty first.
		return 0, nil
	}
	svc := newTestService(m)

	_, err := svc.IssueBountyForProposal(userCtx(uuid.New()), IssueForProposalInput{ProposalID: proposal.ID, Reward: 10})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestIssueBounty_NotEditor(t *testing.T) {
	t.Parallel()

	m := defaultMocks()
	svc := newTestService(m)

	_, err := svc.IssueBounty(userCtx(uuid.New()), IssueBountyInput{Target: topicTarget(), Reward: 10})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestIssueSystemBounty_NoIssuer(t *testing.T) {
	t.Parallel()

	m := defaultMocks()
	m.bounties.CreateFunc = func(ctx context.Context, b *domain.Bounty) (*domain.Bounty, error) {
		created := *b
		created.ID = uuid.New()
		return &created, nil
	}
	svc := newTestService(m)

	b, err := svc.IssueSystemBounty(context.Background(), IssueBountyInput{Target: topicTarget(), Reward: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.IssuerID != nil {
		t.Errorf("issuer: got %v, want nil (system)", b.IssuerID)
	}
}

func TestClaimBounty_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	target := topicTarget()
	bounty := &domain.Bounty{ID: uuid.New(), Target: target, Reward: 50, Active: true}

	m := defaultMocks()
	claimed := false
	m.bounties.ClaimFunc = func(ctx context.Context, id, claimerID uuid.UUID) (int64, error) {
		claimed = true
		return 1, nil
	}
	m.bounties.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Bounty, error) {
		cp := *bounty
		if claimed {
			cp.ClaimerID = &userID
			completed := fixedNow()
			cp.DateCompleted = &completed
		}
		return &cp, nil
	}
	m.contributions.LogFunc = func(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
		return c, nil
	}
	svc := newTestService(m)

	got, err := svc.ClaimBounty(userCtx(userID), bounty.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ClaimerID == nil || *got.ClaimerID != userID {
		t.Errorf("claimer: got %v, want %v", got.ClaimerID, userID)
	}
	if got.DateCompleted == nil {
		t.Error("completion: got nil, want set together with claimer")
	}

	logs := m.contributions.LogCalls()
	if len(logs) != 1 {
		t.Fatalf("contribution logs: got %d, want 1", len(logs))
	}
	if logs[0].UserID != userID || logs[0].Target != target {
		t.Errorf("contribution: got %+v, want user %v on %v", logs[0], userID, target)
	}
}

func TestClaimBounty_AlreadyClaimed(t *testing.T) {
	t.Parallel()

	otherUser := uuid.New()
	bounty := &domain.Bounty{ID: uuid.New(), Target: topicTarget(), Active: true, ClaimerID: &otherUser}

	m := defaultMocks()
	m.bounties.ClaimFunc = func(ctx context.Context, id, claimerID uuid.UUID) (int64, error) {
		return 0, nil
	}
	m.bounties.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Bounty, error) {
		cp := *bounty
		return &cp, nil
	}
	svc := newTestService(m)

	_, err := svc.ClaimBounty(userCtx(uuid.New()), bounty.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestClaimBounty_Expired(t *testing.T) {
	t.Parallel()

	past := fixedNow().Add(-time.Hour)
	bounty := &domain.Bounty{ID: uuid.New(), Target: topicTarget(), Active: true, DateExpire: &past}

	m := defaultMocks()
	m.bounties.ClaimFunc = func(ctx context.Context, id, claimerID uuid.UUID) (int64, error) {
		return 0, nil
	}
	m.bounties.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Bounty, error) {
		cp := *bounty
		return &cp, nil
	}
	svc := newTestService(m)

	_, err := svc.ClaimBounty(userCtx(uuid.New()), bounty.ID)
	if !errors.Is(err, domain.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestDeactivateBounty_ClaimedIsImmutable(t *testing.T) {
	t.Parallel()

	claimer := uuid.New()
	bounty := &domain.Bounty{ID: uuid.New(), Target: topicTarget(), Active: true, ClaimerID: &claimer}

	m := defaultMocks()
	m.access = editorAccess()
	m.bounties.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Bounty, error) {
		cp := *bounty
		return &cp, nil
	}
	svc := newTestService(m)

	err := svc.DeactivateBounty(userCtx(uuid.New()), bounty.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTopicScope_ListItemResolvesThroughList(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()
	listID := uuid.New()
	itemID := uuid.New()

	m := defaultMocks()
	m.items.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.ListItem, error) {
		return &domain.ListItem{ID: itemID, ListID: listID}, nil
	}
	m.lists.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.List, error) {
		return &domain.List{ID: listID, TopicID: &topicID}, nil
	}
	var resolvedTopic uuid.UUID
	m.access.ResolveFunc = func(ctx context.Context, userID, tID uuid.UUID) (access.Grant, error) {
		resolvedTopic = tID
		return access.Grant{CanRead: true, CanEdit: true}, nil
	}
	m.bounties.CreateFunc = func(ctx context.Context, b *domain.Bounty) (*domain.Bounty, error) {
		created := *b
		created.ID = uuid.New()
		return &created, nil
	}
	svc := newTestService(m)

	_, err := svc.IssueBounty(userCtx(uuid.New()), IssueBountyInput{
		Target: domain.EntityRef{Kind: domain.EntityKindListItem, ID: itemID},
		Reward: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolvedTopic != topicID {
		t.Errorf("authorization scope: got %v, want list's topic %v", resolvedTopic, topicID)
	}
}
