package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterSchema(r)

	code, body := getJSON(t, r, "/schema")
	require.Equal(t, http.StatusOK, code)

	for _, key := range []string{"tenant", "owner", "property", "lease", "sale", "expense", "document"} {
		assert.Contains(t, body, key)
	}
	assert.Len(t, body, 7)

	tenant, ok := body["tenant"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Tenant", tenant["title"])
	assert.Equal(t, "object", tenant["type"])
	assert.ElementsMatch(t, []interface{}{"first_name", "last_name"}, tenant["required"])

	property, ok := body["property"].(map[string]interface{})
	require.True(t, ok)
	props, ok := property["properties"].(map[string]interface{})
	require.True(t, ok)
	typeProp, ok := props["type"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "apartment", typeProp["default"])
	assert.Len(t, typeProp["enum"], 8)
}
