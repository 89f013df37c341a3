package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oakfieldhq/oakfield/internal/models"
	"github.com/oakfieldhq/oakfield/internal/services"
	apperrors "github.com/oakfieldhq/oakfield/pkg/errors"
	"github.com/oakfieldhq/oakfield/pkg/logger"
)

// PropertyHandler serves the property listing, cache statistics and cache
// invalidation endpoints.
type PropertyHandler struct {
	listings   *services.ListingCacheService
	authorizer Authorizer
	log        *zap.Logger
}

// NewPropertyHandler wires the cache-aside accessor and the invalidation
// authorizer. A nil authorizer defaults to the POST-method check.
func NewPropertyHandler(listings *services.ListingCacheService, authorizer Authorizer) (*PropertyHandler, error) {
	if listings == nil {
		return nil, errors.New("property handler: listing cache service is required")
	}
	if authorizer == nil {
		authorizer = MethodAuthorizer{}
	}
	return &PropertyHandler{
		listings:   listings,
		authorizer: authorizer,
		log:        logger.WithModule("properties"),
	}, nil
}

type cacheInfo struct {
	IsCached     bool   `json:"is_cached"`
	CacheBackend string `json:"cache_backend"`
	CacheTimeout string `json:"cache_timeout"`
	CacheKey     string `json:"cache_key"`
}

type performanceInfo struct {
	DataSource string `json:"data_source"`
	Note       string `json:"note"`
}

type listResponse struct {
	Properties  []models.Property `json:"properties"`
	Count       int               `json:"count"`
	CacheInfo   cacheInfo         `json:"cache_info"`
	Performance performanceInfo   `json:"performance"`
}

type statsResponse struct {
	CacheStatistics services.CacheStats `json:"cache_statistics"`
	Message         string              `json:"message"`
}

type invalidateResponse struct {
	Message     string `json:"message"`
	Action      string `json:"action"`
	NextRequest string `json:"next_request"`
}

type methodNotAllowedResponse struct {
	Error         string `json:"error"`
	CurrentMethod string `json:"current_method"`
}

// List returns every property, reading through the cache. Cache presence is
// snapshotted before the read-through so a cold request reports the store
// as its data source rather than the cache it just populated.
func (h *PropertyHandler) List(c *gin.Context) {
	ctx := requestContext(c)

	cached, err := h.listings.IsCached(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	properties, err := h.listings.GetAllProperties(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	performance := performanceInfo{
		DataSource: "Database",
		Note:       "Fetched from the store and cached for subsequent requests",
	}
	if cached {
		performance = performanceInfo{
			DataSource: "Cache",
			Note:       "Served from the collection cache",
		}
	}

	c.JSON(http.StatusOK, listResponse{
		Properties: properties,
		Count:      len(properties),
		CacheInfo: cacheInfo{
			IsCached:     cached,
			CacheBackend: h.listings.Backend(),
			CacheTimeout: h.listings.TTLLabel(),
			CacheKey:     services.CollectionCacheKey,
		},
		Performance: performance,
	})
}

// CacheStats returns the cache introspection payload.
func (h *PropertyHandler) CacheStats(c *gin.Context) {
	stats, err := h.listings.Stats(requestContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		CacheStatistics: stats,
		Message:         "Cache statistics retrieved successfully",
	})
}

// InvalidateCache drops the collection snapshot. The endpoint accepts POST
// only; any other method yields a structured 405 naming the rejected method.
func (h *PropertyHandler) InvalidateCache(c *gin.Context) {
	if err := h.authorizer.Authorize(c.Request); err != nil {
		if errors.Is(err, apperrors.ErrMethodNotAllowed) {
			c.JSON(http.StatusMethodNotAllowed, methodNotAllowedResponse{
				Error:         "Only POST method allowed for cache invalidation",
				CurrentMethod: c.Request.Method,
			})
			return
		}
		h.fail(c, err)
		return
	}

	if err := h.listings.Invalidate(requestContext(c)); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, invalidateResponse{
		Message:     "Cache invalidated successfully",
		Action:      "cache_invalidated",
		NextRequest: "Next request will fetch fresh data from database",
	})
}

func (h *PropertyHandler) fail(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	h.log.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(appErr.StatusCode, gin.H{"error": appErr.Message})
}
