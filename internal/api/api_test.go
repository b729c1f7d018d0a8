package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haliax/globc/internal/api"
)

func TestHandleCompileLiteral(t *testing.T) {
	router := api.NewRouter()

	body, _ := json.Marshal(map[string]interface{}{"pattern": "README.md"})
	req := httptest.NewRequest(http.MethodPost, "/compile", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["literal"])
	assert.Equal(t, "README.md", resp["source"])
}

func TestHandleCompileRegex(t *testing.T) {
	router := api.NewRouter()

	body, _ := json.Marshal(map[string]interface{}{"pattern": "*.js"})
	req := httptest.NewRequest(http.MethodPost, "/compile", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["literal"])
	assert.NotEmpty(t, resp["source"])
}

func TestHandleMatch(t *testing.T) {
	router := api.NewRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"pattern": "*.js",
		"paths":   []string{"a.js", "b.go"},
	})
	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a.js"}, resp["matches"])
}

func TestHandleCompileBadBody(t *testing.T) {
	router := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/compile", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
