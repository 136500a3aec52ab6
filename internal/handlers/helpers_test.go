package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"parley/internal/db"
	"parley/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the full stack against a throwaway SQLite database,
// the same way the production server wires it against Postgres.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "parley.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	r := gin.New()
	router.RegisterRoutes(r, gdb)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &obj))
	return obj
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

// objectID pulls a numeric id field out of a decoded JSON object.
func objectID(t *testing.T, obj map[string]interface{}, field string) uint {
	t.Helper()

	raw, ok := obj[field].(float64)
	require.True(t, ok, "field %q is not a number: %v", field, obj[field])
	return uint(raw)
}

func createUser(t *testing.T, r *gin.Engine, username string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{"username": username})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return objectID(t, decodeObject(t, w), "id")
}

func createDiscussion(t *testing.T, r *gin.Engine, authorID uint, title, body string) uint {
	t.Helper()

	path := fmt.Sprintf("/discussions?author_id=%d", authorID)
	w := doJSON(t, r, http.MethodPost, path, gin.H{"title": title, "body": body})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return objectID(t, decodeObject(t, w), "id")
}

func createComment(t *testing.T, r *gin.Engine, discussionID, authorID uint, body gin.H) map[string]interface{} {
	t.Helper()

	path := fmt.Sprintf("/comments/discussion/%d?author_id=%d", discussionID, authorID)
	w := doJSON(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeObject(t, w)
}
