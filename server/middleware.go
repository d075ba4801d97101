package server

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	errs "github.com/techwatch/communitywatch/errors"
	"github.com/techwatch/communitywatch/server/response"
)

const viewerIDHeader = "X-Viewer-ID"

func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *errs.Error) {
	response.JSON(c, message, status, data, e)
	c.Abort()
}

// ViewerID pulls the opaque viewer identifier off the request and stashes it
// in the context. The identifier is self-assigned by the client and never
// verified; it is a correlation key, not a security boundary.
func (s *Server) ViewerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("viewerID", c.GetHeader(viewerIDHeader))
		c.Next()
	}
}

// RequireViewerID aborts requests that carry no viewer identifier. Used on
// the routes that attribute engagement to a viewer.
func (s *Server) RequireViewerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := c.GetHeader(viewerIDHeader)
		if viewerID == "" {
			respondAndAbort(c, "", http.StatusBadRequest, nil, errs.New("missing "+viewerIDHeader+" header", http.StatusBadRequest))
			return
		}
		c.Set("viewerID", viewerID)
		c.Next()
	}
}

func viewerIDFromContext(c *gin.Context) string {
	if v, ok := c.Get("viewerID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return c.GetHeader(viewerIDHeader)
}

// limitMutations rate limits the write endpoints per viewer (falling back to
// client IP). Backed by redis when configured so the limit holds across
// instances, in-memory otherwise.
func (s *Server) limitMutations() gin.HandlerFunc {
	limit := uint(s.Config.CommentRateLimit)
	if limit == 0 {
		limit = 20
	}

	var store ratelimit.Store
	if s.Config.RedisAddr != "" {
		store = ratelimit.RedisStore(&ratelimit.RedisOptions{
			RedisClient: redis.NewClient(&redis.Options{Addr: s.Config.RedisAddr}),
			Rate:        time.Minute,
			Limit:       limit,
		})
	} else {
		store = ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
			Rate:  time.Minute,
			Limit: limit,
		})
	}

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: rateLimitExceeded,
		KeyFunc:      rateLimitKey,
	})
}

func rateLimitKey(c *gin.Context) string {
	if viewerID := c.GetHeader(viewerIDHeader); viewerID != "" {
		return viewerID
	}
	return c.ClientIP()
}

func rateLimitExceeded(c *gin.Context, info ratelimit.Info) {
	respondAndAbort(c, "too many requests", http.StatusTooManyRequests, nil,
		errs.New("rate limit exceeded, retry after "+info.ResetTime.Format(time.RFC3339), http.StatusTooManyRequests))
}
