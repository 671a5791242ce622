package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "Admin API", doc.Info.Title)

	want := map[string][]string{
		"/departments":      {"get", "post"},
		"/departments/{id}": {"get", "put", "patch", "delete"},
		"/roles":            {"get", "post"},
		"/roles/{id}":       {"get", "put", "patch", "delete"},
		"/health":           {"get"},
		"/healthz":          {"get"},
	}
	for path, methods := range want {
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}

	for _, def := range []string{"handler.entityResponse", "handler.entityList", "handler.errorPayload", "model.NamedEntity"} {
		assert.Contains(t, doc.Definitions, def)
	}
}
