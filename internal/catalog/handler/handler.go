package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tenanthq/tenant-api/internal/catalog"
	"github.com/tenanthq/tenant-api/internal/catalog/service"
	"github.com/tenanthq/tenant-api/pkg/logger"
	"github.com/tenanthq/tenant-api/pkg/metrics"
)

// RegisterRoutes registers the generic collection endpoints. The :collection
// segment is validated by the service against the fixed allow-list; nothing
// here ever creates a collection that is not allow-listed.
func RegisterRoutes(r gin.IRouter, svc *service.Service) {
	r.GET("/api/:collection", listCollection(svc))
	r.POST("/api/:collection", createRecord(svc))
}

func listCollection(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		collection := c.Param("collection")

		limit := int64(service.DefaultLimit)
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || n < 1 {
				metrics.GatewayRejected.WithLabelValues("invalid_limit").Inc()
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			limit = n
		}

		records, err := svc.List(c.Request.Context(), collection, limit)
		if err != nil {
			writeServiceError(c, "list", err)
			return
		}
		metrics.GatewayOperations.WithLabelValues(collection, "list").Inc()
		c.JSON(http.StatusOK, gin.H{"items": records})
	}
}

func createRecord(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		collection := c.Param("collection")

		var payload catalog.Record
		if err := c.ShouldBindJSON(&payload); err != nil {
			metrics.GatewayRejected.WithLabelValues("invalid_body").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := svc.Create(c.Request.Context(), collection, payload)
		if err != nil {
			writeServiceError(c, "create", err)
			return
		}
		metrics.GatewayOperations.WithLabelValues(collection, "create").Inc()
		c.JSON(http.StatusOK, gin.H{"id": id, "message": "Created"})
	}
}

func writeServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownCollection):
		metrics.GatewayRejected.WithLabelValues("unknown_collection").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
	case errors.Is(err, service.ErrStoreUnavailable):
		metrics.GatewayRejected.WithLabelValues("store_unavailable").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
	default:
		logger.Errorf("gateway %s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store operation failed"})
	}
}
