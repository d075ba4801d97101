package client

import (
	"sync"

	"github.com/techwatch/communitywatch/models"
)

// Cache is the client-side read model keyed by report id. Snapshots from the
// server replace everything; optimistic patches applied after a successful
// mutation only survive until the next snapshot lands.
type Cache struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*models.ReportView
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*models.ReportView)}
}

// ReplaceAll reconciles the cache against a fresh aggregation snapshot,
// dropping any optimistic patches.
func (c *Cache) ReplaceAll(views []models.ReportView) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = c.order[:0]
	c.entries = make(map[string]*models.ReportView, len(views))
	for i := range views {
		v := views[i]
		id := v.ID.String()
		c.order = append(c.order, id)
		c.entries[id] = &v
	}
}

// Reports returns the cached feed in server order.
func (c *Cache) Reports() []models.ReportView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	views := make([]models.ReportView, 0, len(c.order))
	for _, id := range c.order {
		views = append(views, *c.entries[id])
	}
	return views
}

// Get returns the cached view for one report.
func (c *Cache) Get(reportID string) (models.ReportView, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[reportID]
	if !ok {
		return models.ReportView{}, false
	}
	return *v, true
}

// PatchLike applies the optimistic local update after a successful toggle.
func (c *Cache) PatchLike(reportID string, liked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[reportID]
	if !ok {
		return
	}
	if liked && !v.HasViewerLiked {
		v.Upvotes++
	}
	if !liked && v.HasViewerLiked && v.Upvotes > 0 {
		v.Upvotes--
	}
	v.HasViewerLiked = liked
}

// PatchComment appends the new comment body after a successful post.
func (c *Cache) PatchComment(reportID, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[reportID]
	if !ok {
		return
	}
	v.CommentsList = append(v.CommentsList, content)
	v.Comments = len(v.CommentsList)
}
