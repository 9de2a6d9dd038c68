package upload

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tenanthq/tenant-api/internal/catalog"
	"github.com/tenanthq/tenant-api/internal/catalog/service"
	"github.com/tenanthq/tenant-api/internal/storage"
	"github.com/tenanthq/tenant-api/pkg/logger"
	"github.com/tenanthq/tenant-api/pkg/metrics"
)

const previewRunes = 1000

// Handler serves the file intake endpoint and the stored-file retrieval
// endpoint. The object store is optional; when absent uploads still create
// document records, only the raw bytes are discarded after extraction.
type Handler struct {
	svc      *service.Service
	store    *storage.ObjectStore
	maxBytes int64
}

func NewHandler(svc *service.Service, store *storage.ObjectStore, maxBytes int64) *Handler {
	return &Handler{svc: svc, store: store, maxBytes: maxBytes}
}

// Register adds the upload and file retrieval routes.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/api/upload", h.uploadFile)
	r.GET("/api/files/:key", h.serveFile)
}

func (h *Handler) uploadFile(c *gin.Context) {
	// Store availability is checked before the body is read at all.
	if h.svc.Store() == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
		return
	}

	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.GatewayRejected.WithLabelValues("upload_too_large").Inc()
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	filename := fileHeader.Filename
	if filename == "" {
		filename = "uploaded"
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	title := c.PostForm("title")
	if title == "" {
		title = filename
	}

	// Absent means null, present but empty is kept as an empty string.
	var relatedID interface{}
	if rid, ok := c.GetPostForm("related_id"); ok {
		relatedID = rid
	}

	extracted, kind := ExtractText(filename, raw)
	metrics.UploadsProcessed.WithLabelValues(kind).Inc()

	var extractedVal interface{}
	if extracted != nil {
		extractedVal = *extracted
	}

	doc := catalog.Record{
		"title":          title,
		"filename":       filename,
		"content_type":   contentType,
		"tags":           ParseTags(c.PostForm("tags")),
		"related_type":   c.DefaultPostForm("related_type", "general"),
		"related_id":     relatedID,
		"extracted_text": extractedVal,
	}

	if h.store != nil {
		key := uuid.NewString()
		if err := h.store.Upload(c.Request.Context(), key, bytes.NewReader(raw), int64(len(raw)), contentType); err != nil {
			logger.Errorf("object store write failed for %s: %v", filename, err)
		} else {
			doc["file_id"] = key
		}
	}

	id, err := h.svc.Create(c.Request.Context(), "document", doc)
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
			return
		}
		logger.Errorf("upload insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store operation failed"})
		return
	}

	// Empty extracts keep the stored field but yield a null preview.
	var preview interface{}
	if extracted != nil && *extracted != "" {
		preview = Preview(*extracted, previewRunes)
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Uploaded", "preview": preview})
}

func (h *Handler) serveFile(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Object storage not configured"})
		return
	}
	key := c.Param("key")

	if presign := c.Query("presign"); presign == "1" || presign == "true" {
		url, err := h.store.PresignedURL(c.Request.Context(), key, 15*time.Minute)
		if err != nil {
			logger.Errorf("presign failed for %s: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "presign failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}

	rc, info, err := h.store.Download(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	defer rc.Close()
	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, rc, nil)
}
