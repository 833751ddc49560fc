package packages

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logoproof/Katalog-tsalis/internal/auth"
)

type roleMap map[int64]string

func (r roleMap) RoleByID(ctx context.Context, id int64) (string, error) {
	role, ok := r[id]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return role, nil
}

const testSecret = "test-secret"

func newRouter(store Store) (*gin.Engine, *auth.JWTManager) {
	gin.SetMode(gin.TestMode)

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{Issuer: "test", Secret: testSecret})
	resolver := auth.NewResolver(jwtMgr, roleMap{1: "admin", 2: "customer"})
	h := NewHandler(NewService(store, resolver))

	r := gin.New()
	r.GET("/api/packages", h.List)
	r.PUT("/api/packages", h.Put)
	r.PATCH("/api/packages", h.Patch)
	return r, jwtMgr
}

func doJSON(r *gin.Engine, method, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/packages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustSign(t *testing.T, m *auth.JWTManager, uid int64) string {
	t.Helper()
	tok, _, err := m.Sign(uid)
	require.NoError(t, err)
	return tok
}

func TestGetPackages_PublicWithoutToken(t *testing.T) {
	store := newMemStore()
	store.packages["Silver"] = []string{"A", "B"}
	r, _ := newRouter(store)

	w := doJSON(r, http.MethodGet, "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Packages []struct {
			Name string   `json:"name"`
			SKUs []string `json:"skus"`
		} `json:"packages"`
		IsAdmin bool `json:"is_admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.IsAdmin)
	require.Len(t, body.Packages, 1)
	assert.Equal(t, []string{"A", "B"}, body.Packages[0].SKUs)
}

func TestGetPackages_AdminFlag(t *testing.T) {
	r, jwtMgr := newRouter(newMemStore())

	w := doJSON(r, http.MethodGet, "", mustSign(t, jwtMgr, 1))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_admin":true`)

	// Invalid token still answers 200, just without the admin flag.
	w = doJSON(r, http.MethodGet, "", "garbage")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_admin":false`)
}

func TestPutPackages_Unauthenticated(t *testing.T) {
	store := newMemStore()
	r, _ := newRouter(store)

	w := doJSON(r, http.MethodPut, `{"name":"Silver","skus":["A"]}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, store.replaceCalls, "no mutation on 401")
}

func TestPutPackages_Forbidden(t *testing.T) {
	store := newMemStore()
	r, jwtMgr := newRouter(store)

	w := doJSON(r, http.MethodPut, `{"name":"Silver","skus":["A"]}`, mustSign(t, jwtMgr, 2))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, store.replaceCalls)
}

func TestPutPackages_UnknownUserIsForbidden(t *testing.T) {
	r, jwtMgr := newRouter(newMemStore())

	w := doJSON(r, http.MethodPut, `{"name":"Silver","skus":["A"]}`, mustSign(t, jwtMgr, 99))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPutPackages_InvalidPayload(t *testing.T) {
	r, jwtMgr := newRouter(newMemStore())
	admin := mustSign(t, jwtMgr, 1)

	for _, body := range []string{
		`{"skus":["A"]}`,
		`{"name":"Silver"}`,
		`{"name":"Silver","skus":"A"}`,
		`{broken`,
	} {
		w := doJSON(r, http.MethodPut, body, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestPutPackages_ReplacesMembership(t *testing.T) {
	store := newMemStore()
	r, jwtMgr := newRouter(store)
	admin := mustSign(t, jwtMgr, 1)

	w := doJSON(r, http.MethodPut, `{"name":"Silver","skus":["A","B"]}`, admin)
	require.Equal(t, http.StatusOK, w.Code)

	// Writing the same body twice stays a single package with the same rows.
	w = doJSON(r, http.MethodPut, `{"name":"Silver","skus":["A","B"]}`, admin)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"A", "B"}, store.packages["Silver"])
	assert.Len(t, store.packages, 1)

	var body struct {
		Package struct {
			Name string   `json:"name"`
			SKUs []string `json:"skus"`
		} `json:"package"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Silver", body.Package.Name)
	assert.Equal(t, []string{"A", "B"}, body.Package.SKUs)
}

func TestPatchPackages_Merge(t *testing.T) {
	store := newMemStore()
	store.packages["Silver"] = []string{"A", "B"}
	r, jwtMgr := newRouter(store)

	w := doJSON(r, http.MethodPatch, `{"name":"Silver","addSkus":["B","C"],"removeSkus":["A"]}`, mustSign(t, jwtMgr, 1))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"B", "C"}, store.packages["Silver"])
}

func TestPatchPackages_UnknownPackage(t *testing.T) {
	r, jwtMgr := newRouter(newMemStore())

	w := doJSON(r, http.MethodPatch, `{"name":"Gold","addSkus":["A"]}`, mustSign(t, jwtMgr, 1))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchPackages_MissingName(t *testing.T) {
	r, jwtMgr := newRouter(newMemStore())

	w := doJSON(r, http.MethodPatch, `{"addSkus":["A"]}`, mustSign(t, jwtMgr, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchPackages_Unauthenticated(t *testing.T) {
	store := newMemStore()
	store.packages["Silver"] = []string{"A"}
	r, _ := newRouter(store)

	w := doJSON(r, http.MethodPatch, `{"name":"Silver","addSkus":["B"]}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, []string{"A"}, store.packages["Silver"])
}
