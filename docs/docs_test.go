package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc_RegistradoYValido(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	assert.Equal(t, "2.0", parsed.Swagger)
	assert.Contains(t, parsed.Paths, "/products/{category_slug}")
	assert.Contains(t, parsed.Paths["/reviews/{product_slug}"], "post")
	assert.Contains(t, parsed.Paths["/permission/delete"], "delete")
}
