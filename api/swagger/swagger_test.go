package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocDescribesRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	want := map[string]string{
		"/health":                 "get",
		"/ready":                  "get",
		"/auth/signup":            "post",
		"/auth/login":             "post",
		"/auth/me":                "get",
		"/class":                  "post",
		"/class/{id}":             "get",
		"/class/{id}/add-student": "post",
		"/students":               "get",
	}
	for path, method := range want {
		assert.Contains(t, doc.Paths[path], method, path)
	}
}
