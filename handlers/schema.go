package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tenanthq/tenant-api/internal/schema"
)

// RegisterSchema adds the introspection endpoint that returns every entity
// schema keyed by its collection name.
func RegisterSchema(r gin.IRouter) {
	r.GET("/schema", func(c *gin.Context) {
		out := gin.H{}
		for _, name := range schema.TypeNames() {
			s, ok := schema.Lookup(name)
			if !ok {
				continue
			}
			out[strings.ToLower(name)] = s
		}
		c.JSON(http.StatusOK, out)
	})
}
