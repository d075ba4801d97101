package client

import (
	"testing"

	"github.com/google/uuid"
	"github.com/techwatch/communitywatch/models"
)

func view(id uuid.UUID, upvotes, comments int, liked bool, bodies ...string) models.ReportView {
	if bodies == nil {
		bodies = []string{}
	}
	return models.ReportView{
		Report:         models.Report{ID: id},
		Upvotes:        upvotes,
		Comments:       comments,
		HasViewerLiked: liked,
		CommentsList:   bodies,
	}
}

func TestCacheReplaceAllKeepsServerOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	cache := NewCache()
	cache.ReplaceAll([]models.ReportView{view(a, 0, 0, false), view(b, 0, 0, false), view(c, 0, 0, false)})

	reports := cache.Reports()
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	for i, want := range []uuid.UUID{a, b, c} {
		if reports[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, reports[i].ID)
		}
	}

	// A new snapshot replaces the whole feed, including its order.
	cache.ReplaceAll([]models.ReportView{view(c, 1, 0, false), view(a, 0, 0, false)})
	reports = cache.Reports()
	if len(reports) != 2 || reports[0].ID != c || reports[1].ID != a {
		t.Errorf("unexpected feed after second snapshot: %v", reports)
	}
	if _, ok := cache.Get(b.String()); ok {
		t.Error("expected b to be gone after the new snapshot")
	}
}

func TestCachePatchLike(t *testing.T) {
	id := uuid.New()
	cache := NewCache()
	cache.ReplaceAll([]models.ReportView{view(id, 2, 0, false)})

	cache.PatchLike(id.String(), true)
	v, _ := cache.Get(id.String())
	if v.Upvotes != 3 || !v.HasViewerLiked {
		t.Fatalf("after like: upvotes=%d liked=%v", v.Upvotes, v.HasViewerLiked)
	}

	// Re-applying the same state must not double count.
	cache.PatchLike(id.String(), true)
	v, _ = cache.Get(id.String())
	if v.Upvotes != 3 {
		t.Fatalf("expected no double increment, got %d", v.Upvotes)
	}

	cache.PatchLike(id.String(), false)
	v, _ = cache.Get(id.String())
	if v.Upvotes != 2 || v.HasViewerLiked {
		t.Fatalf("after unlike: upvotes=%d liked=%v", v.Upvotes, v.HasViewerLiked)
	}

	cache.PatchLike(id.String(), false)
	v, _ = cache.Get(id.String())
	if v.Upvotes != 2 {
		t.Fatalf("expected no double decrement, got %d", v.Upvotes)
	}
}

func TestCachePatchLikeFloorsAtZero(t *testing.T) {
	id := uuid.New()
	cache := NewCache()
	cache.ReplaceAll([]models.ReportView{view(id, 0, 0, true)})

	cache.PatchLike(id.String(), false)
	v, _ := cache.Get(id.String())
	if v.Upvotes != 0 {
		t.Errorf("expected count floored at zero, got %d", v.Upvotes)
	}
	if v.HasViewerLiked {
		t.Error("expected liked state cleared")
	}
}

func TestCachePatchComment(t *testing.T) {
	id := uuid.New()
	cache := NewCache()
	cache.ReplaceAll([]models.ReportView{view(id, 0, 1, false, "first")})

	cache.PatchComment(id.String(), "second")
	v, _ := cache.Get(id.String())
	if v.Comments != 2 {
		t.Errorf("expected comment count 2, got %d", v.Comments)
	}
	if len(v.CommentsList) != 2 || v.CommentsList[1] != "second" {
		t.Errorf("expected new comment appended last, got %v", v.CommentsList)
	}
}

func TestCachePatchesIgnoreUnknownReports(t *testing.T) {
	cache := NewCache()
	cache.PatchLike(uuid.New().String(), true)
	cache.PatchComment(uuid.New().String(), "hello")
	if reports := cache.Reports(); len(reports) != 0 {
		t.Errorf("expected empty cache, got %v", reports)
	}
}

func TestCacheSnapshotOverridesPatches(t *testing.T) {
	id := uuid.New()
	cache := NewCache()
	cache.ReplaceAll([]models.ReportView{view(id, 0, 0, false)})
	cache.PatchLike(id.String(), true)
	cache.PatchComment(id.String(), "optimistic")

	// The server snapshot is authoritative; optimistic state is dropped.
	cache.ReplaceAll([]models.ReportView{view(id, 5, 1, true, "from server")})
	v, _ := cache.Get(id.String())
	if v.Upvotes != 5 || v.Comments != 1 || v.CommentsList[0] != "from server" {
		t.Errorf("expected snapshot state, got %+v", v)
	}
}
