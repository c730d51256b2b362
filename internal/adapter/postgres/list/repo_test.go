package list_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/listforge/listforge-backend/internal/adapter/postgres/list"
	"github.com/listforge/listforge-backend/internal/adapter/postgres/testhelper"
	"github.com/listforge/listforge-backend/internal/domain"
)

func newRepo(t *testing.T) (*list.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return list.New(pool), pool
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	topic := testhelper.SeedTopic(t, pool, "create-happy")
	creator := uuid.New()
	desc := "a curated selection"

	got, err := repo.Create(ctx, &domain.List{
		Title:       "Essential Reading",
		Description: &desc,
		TopicID:     &topic.ID,
		Active:      true,
		Status:      domain.ListStatusDraft,
		CreatorID:   &creator,
		Version:     1,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID == uuid.Nil {
		t.Error("ID should be assigned")
	}
	if got.Title != "Essential Reading" {
		t.Errorf("Title mismatch: got %q", got.Title)
	}
	if got.Description == nil || *got.Description != desc {
		t.Errorf("Description mismatch: got %v", got.Description)
	}
	if got.TopicID == nil || *got.TopicID != topic.ID {
		t.Errorf("TopicID mismatch: got %v, want %s", got.TopicID, topic.ID)
	}
	if got.Status != domain.ListStatusDraft {
		t.Errorf("Status mismatch: got %s", got.Status)
	}
	if got.LockUserID != nil {
		t.Errorf("LockUserID should start nil, got %v", got.LockUserID)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_UpdateContent_StatusGuard(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	submitted := testhelper.SeedList(t, pool, domain.ListStatusSubmitted)

	affected, err := repo.UpdateContent(ctx, submitted.ID, "new title", nil, nil)
	if err != nil {
		t.Fatalf("UpdateContent: unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 rows affected for non-DRAFT list, got %d", affected)
	}

	draft := testhelper.SeedList(t, pool, domain.ListStatusDraft)

	affected, err = repo.UpdateContent(ctx, draft.ID, "new title", nil, nil)
	if err != nil {
		t.Fatalf("UpdateContent: unexpected error: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 row affected for DRAFT list, got %d", affected)
	}
}

// Concurrent claims race on the same SUBMITTED list; the conditional UPDATE
// must let exactly one through.
func TestRepo_Claim_ConcurrentExactlyOneWinner(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	l := testhelper.SeedList(t, pool, domain.ListStatusSubmitted)

	const claimers = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins []uuid.UUID
	)

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			editorID := uuid.New()
			affected, err := repo.Claim(ctx, l.ID, editorID)
			if err != nil {
				t.Errorf("Claim: %v", err)
				return
			}
			if affected == 1 {
				mu.Lock()
				wins = append(wins, editorID)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(wins) != 1 {
		t.Fatalf("expected exactly 1 winning claim, got %d", len(wins))
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.LockUserID == nil || *got.LockUserID != wins[0] {
		t.Errorf("LockUserID mismatch: got %v, want %s", got.LockUserID, wins[0])
	}
}

func TestRepo_Publish_WrongEditor(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	l := testhelper.SeedList(t, pool, domain.ListStatusSubmitted)
	editor := uuid.New()

	if affected, err := repo.Claim(ctx, l.ID, editor); err != nil || affected != 1 {
		t.Fatalf("Claim: affected=%d err=%v", affected, err)
	}

	affected, err := repo.Publish(ctx, l.ID, uuid.New())
	if err != nil {
		t.Fatalf("Publish: unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 rows affected for non-holder, got %d", affected)
	}

	affected, err = repo.Publish(ctx, l.ID, editor)
	if err != nil {
		t.Fatalf("Publish: unexpected error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected for lock holder, got %d", affected)
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != domain.ListStatusPublished {
		t.Errorf("Status mismatch: got %s, want PUBLISHED", got.Status)
	}
	if got.LockUserID != nil {
		t.Errorf("lock should be cleared on publish, got %v", got.LockUserID)
	}
}

func TestRepo_ReturnToDraft_CreatorWhileUnlocked(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	l := testhelper.SeedList(t, pool, domain.ListStatusSubmitted)

	// A stranger cannot withdraw it.
	affected, err := repo.ReturnToDraft(ctx, l.ID, uuid.New())
	if err != nil {
		t.Fatalf("ReturnToDraft: unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 rows affected for non-creator, got %d", affected)
	}

	affected, err = repo.ReturnToDraft(ctx, l.ID, *l.CreatorID)
	if err != nil {
		t.Fatalf("ReturnToDraft: unexpected error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected for creator of unlocked list, got %d", affected)
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != domain.ListStatusDraft {
		t.Errorf("Status mismatch: got %s, want DRAFT", got.Status)
	}
}

func TestRepo_ReturnToDraft_LockedListUntouched(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	l := testhelper.SeedList(t, pool, domain.ListStatusSubmitted)

	if affected, err := repo.Claim(ctx, l.ID, uuid.New()); err != nil || affected != 1 {
		t.Fatalf("Claim: affected=%d err=%v", affected, err)
	}

	affected, err := repo.ReturnToDraft(ctx, l.ID, *l.CreatorID)
	if err != nil {
		t.Fatalf("ReturnToDraft: unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 rows affected while an editor holds the lock, got %d", affected)
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != domain.ListStatusSubmitted {
		t.Errorf("Status mismatch: got %s, want SUBMITTED", got.Status)
	}
}

func TestRepo_Delete_ClonedParentRestricted(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	parent := testhelper.SeedList(t, pool, domain.ListStatusPublished)

	_, err := repo.Create(ctx, &domain.List{
		Title:        parent.Title + " (clone)",
		Active:       true,
		Status:       domain.ListStatusDraft,
		ParentListID: &parent.ID,
		Version:      parent.Version + 1,
	})
	if err != nil {
		t.Fatalf("Create clone: %v", err)
	}

	err = repo.Delete(ctx, parent.ID)
	assertIsDomainError(t, err, domain.ErrConflict)
}

func TestRepo_Search_FiltersAndOrder(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	marker := "srch-" + uuid.New().String()[:8]

	published, err := repo.Create(ctx, &domain.List{
		Title: marker + " published", Active: true, Status: domain.ListStatusPublished, Version: 1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.List{
		Title: marker + " draft", Active: true, Status: domain.ListStatusDraft, Version: 1,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.List{
		Title: marker + " inactive", Active: false, Status: domain.ListStatusPublished, Version: 1,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Search(ctx, list.SearchFilter{TitleSubstring: marker})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 result (published+active only), got %d", len(got))
	}
	if got[0].ID != published.ID {
		t.Errorf("result mismatch: got %s, want %s", got[0].ID, published.ID)
	}
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
