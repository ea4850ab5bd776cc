package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/museumsapi/museums-api/internal/storage"
	"github.com/museumsapi/museums-api/pkg/logger"
)

// RegisterFallback answers every unmatched GET with the front-end entry page
// so client-side routes survive a reload. Without a source, or for other
// methods, unmatched routes get a JSON 404.
func RegisterFallback(r *gin.Engine, src storage.AssetSource, index string) {
	if index == "" {
		index = "index.html"
	}
	r.NoRoute(func(c *gin.Context) {
		if src == nil || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.JSON(http.StatusNotFound, gin.H{"err": "Not found"})
			return
		}
		rc, err := src.Open(c.Request.Context(), index)
		if err != nil {
			if !errors.Is(err, storage.ErrAssetNotFound) {
				logger.Errorf("open static asset %s: %v", index, err)
			}
			c.JSON(http.StatusNotFound, gin.H{"err": "Not found"})
			return
		}
		defer rc.Close()
		c.DataFromReader(http.StatusOK, -1, storage.ContentType(index), rc, nil)
	})
}
