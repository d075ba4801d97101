package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/techwatch/communitywatch/models"
)

func TestNewPollerDefaultsInterval(t *testing.T) {
	p := NewPoller(New("http://localhost", "v1"), NewCache(), 0)
	if p.Interval != DefaultRefreshInterval {
		t.Errorf("expected default interval %v, got %v", DefaultRefreshInterval, p.Interval)
	}
	p = NewPoller(New("http://localhost", "v1"), NewCache(), 5*time.Second)
	if p.Interval != 5*time.Second {
		t.Errorf("expected configured interval, got %v", p.Interval)
	}
}

func TestPollerRefreshesImmediatelyAndOnTicks(t *testing.T) {
	id := uuid.New()
	var fetches int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&fetches, 1)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"reports": []models.ReportView{{Report: models.Report{ID: id}, CommentsList: []string{}}},
		}, "")
	}))
	defer srv.Close()

	cache := NewCache()
	p := NewPoller(New(srv.URL, "v1"), cache, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// The first fetch happens before the first tick.
	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt64(&fetches) < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("expected at least 3 fetches, got %d", atomic.LoadInt64(&fetches))
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, ok := cache.Get(id.String()); !ok {
		t.Error("expected the cache to hold the fetched report")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestPollerKeepsLastSnapshotOnFailure(t *testing.T) {
	id := uuid.New()
	var failing atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			writeEnvelope(w, http.StatusInternalServerError, nil, "db down")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"reports": []models.ReportView{{Report: models.Report{ID: id}, Upvotes: 4, CommentsList: []string{}}},
		}, "")
	}))
	defer srv.Close()

	cache := NewCache()
	p := NewPoller(New(srv.URL, "v1"), cache, time.Hour)

	p.refresh(context.Background())
	if v, ok := cache.Get(id.String()); !ok || v.Upvotes != 4 {
		t.Fatalf("expected the snapshot to land, got %+v ok=%v", v, ok)
	}

	failing.Store(true)
	p.refresh(context.Background())
	if v, ok := cache.Get(id.String()); !ok || v.Upvotes != 4 {
		t.Errorf("expected the last good snapshot to survive a failed refresh, got %+v ok=%v", v, ok)
	}
}
