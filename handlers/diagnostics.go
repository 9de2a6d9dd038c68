package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/tenanthq/tenant-api/internal/catalog/repository"
)

const maxDiagnosticCollections = 20

// Diagnostics serves the root banner and the connectivity self-test page.
// Both endpoints always answer 200 so they stay usable when the backing
// store is down, the payload carries the failure instead.
type Diagnostics struct {
	store repository.Store
}

func NewDiagnostics(store repository.Store) *Diagnostics {
	return &Diagnostics{store: store}
}

// Register adds the diagnostic routes.
func (d *Diagnostics) Register(r gin.IRouter) {
	r.GET("/", d.root)
	r.GET("/test", d.selfTest)
}

func (d *Diagnostics) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Tenant API running"})
}

// selfTest reports store connectivity descriptively. The six keys are always
// present; database_url and database_name stay null until a store exists.
func (d *Diagnostics) selfTest(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if d.store == nil {
		resp["database"] = "⚠️ Available but not initialized"
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "✅ Connected & Working"
	resp["database_url"] = envStatus("DATABASE_URL")
	resp["database_name"] = envStatus("DATABASE_NAME")

	names, err := d.store.CollectionNames(c.Request.Context(), maxDiagnosticCollections)
	if err != nil {
		resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["connection_status"] = "Connected"
	resp["collections"] = names
	c.JSON(http.StatusOK, resp)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
