package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paranoid-users/internal/core/auth"
	"paranoid-users/internal/core/database/dbtest"
	"paranoid-users/internal/repo"
	"paranoid-users/internal/service"
	"paranoid-users/internal/transport/http/handler"
	resp "paranoid-users/internal/transport/http/response"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type userView struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	IsActive  bool       `json:"isActive"`
	Price     float64    `json:"price"`
	DeletedAt *time.Time `json:"deletedAt"`
}

type fixture struct {
	api   *gin.Engine
	admin *gin.Engine
	jwter *auth.JWTer
}

func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	svc := service.NewUserService(repo.NewUserRepo(dbtest.Open(t)), zap.NewNop())
	reg := NewRegistry(handler.NewUserHandler(svc))
	jwter := auth.NewJWTer("test-secret", "paranoid-users", time.Hour)
	return &fixture{
		api:   NewAPIEngine(zap.NewNop(), reg, Options{}),
		admin: NewAdminEngine(zap.NewNop(), reg, jwter, Options{}),
		jwter: jwter,
	}
}

func do(t *testing.T, e *gin.Engine, method, path string, body any, token string) envelope {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (f *fixture) adminToken(t *testing.T) string {
	tok, err := f.jwter.Issue("ops", auth.RoleAdmin)
	require.NoError(t, err)
	return tok
}

func (f *fixture) create(t *testing.T, first, last string) userView {
	env := do(t, f.api, http.MethodPost, "/api/v1/users", map[string]string{"firstName": first, "lastName": last}, "")
	require.Equal(t, resp.CodeOK, env.Code, env.Msg)
	var u userView
	require.NoError(t, json.Unmarshal(env.Data, &u))
	return u
}

func TestCreateAndGet(t *testing.T) {
	f := newFixture(t)
	u := f.create(t, "Ada", "Lovelace")
	require.NotEmpty(t, u.ID)
	require.True(t, u.IsActive)
	require.Zero(t, u.Price)
	require.Nil(t, u.DeletedAt)

	env := do(t, f.api, http.MethodGet, "/api/v1/users/"+u.ID, nil, "")
	require.Equal(t, resp.CodeOK, env.Code)
	var got userView
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Equal(t, "Lovelace", got.LastName)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	env := do(t, f.api, http.MethodPost, "/api/v1/users", map[string]string{"firstName": "   ", "lastName": "x"}, "")
	require.Equal(t, resp.CodeBadRequest, env.Code)

	env = do(t, f.api, http.MethodPost, "/api/v1/users", map[string]string{"firstName": "x"}, "")
	require.Equal(t, resp.CodeBadRequest, env.Code)
}

func TestGetMissing(t *testing.T) {
	f := newFixture(t)
	env := do(t, f.api, http.MethodGet, "/api/v1/users/nope", nil, "")
	require.Equal(t, resp.CodeNotFound, env.Code)
	require.Equal(t, "user 'nope' not found", env.Msg)
}

func TestSoftDeleteRestoreFlow(t *testing.T) {
	f := newFixture(t)
	tok := f.adminToken(t)
	u := f.create(t, "Ada", "Lovelace")

	env := do(t, f.api, http.MethodDelete, "/api/v1/users/"+u.ID, nil, "")
	require.Equal(t, resp.CodeOK, env.Code)
	require.JSONEq(t, `{"id":"`+u.ID+`"}`, string(env.Data))

	env = do(t, f.api, http.MethodGet, "/api/v1/users/"+u.ID, nil, "")
	require.Equal(t, resp.CodeNotFound, env.Code)

	env = do(t, f.api, http.MethodDelete, "/api/v1/users/"+u.ID, nil, "")
	require.Equal(t, resp.CodeNotFound, env.Code)

	env = do(t, f.admin, http.MethodGet, "/admin/v1/users/"+u.ID+"?with_deleted=true", nil, tok)
	require.Equal(t, resp.CodeOK, env.Code)
	var hidden userView
	require.NoError(t, json.Unmarshal(env.Data, &hidden))
	require.NotNil(t, hidden.DeletedAt)

	env = do(t, f.admin, http.MethodGet, "/admin/v1/users/"+u.ID, nil, tok)
	require.Equal(t, resp.CodeNotFound, env.Code)

	env = do(t, f.admin, http.MethodPost, "/admin/v1/users/"+u.ID+"/restore", nil, tok)
	require.Equal(t, resp.CodeOK, env.Code)
	var restored userView
	require.NoError(t, json.Unmarshal(env.Data, &restored))
	require.Nil(t, restored.DeletedAt)

	env = do(t, f.api, http.MethodGet, "/api/v1/users/"+u.ID, nil, "")
	require.Equal(t, resp.CodeOK, env.Code)
}

func TestHardDeleteFlow(t *testing.T) {
	f := newFixture(t)
	tok := f.adminToken(t)
	u := f.create(t, "Grace", "Hopper")

	env := do(t, f.admin, http.MethodDelete, "/admin/v1/users/"+u.ID+"/force", nil, tok)
	require.Equal(t, resp.CodeOK, env.Code)

	env = do(t, f.admin, http.MethodPost, "/admin/v1/users/"+u.ID+"/restore", nil, tok)
	require.Equal(t, resp.CodeNotFound, env.Code)
	env = do(t, f.api, http.MethodGet, "/api/v1/users/"+u.ID, nil, "")
	require.Equal(t, resp.CodeNotFound, env.Code)
}

func TestListIncludesSoftDeleted(t *testing.T) {
	f := newFixture(t)
	a := f.create(t, "a", "a")
	f.create(t, "b", "b")
	f.create(t, "c", "c")
	do(t, f.api, http.MethodDelete, "/api/v1/users/"+a.ID, nil, "")

	env := do(t, f.api, http.MethodGet, "/api/v1/users", nil, "")
	require.Equal(t, resp.CodeOK, env.Code)
	var out struct {
		Items []userView `json:"items"`
		Stats struct {
			MinPrice    *float64 `json:"minPrice"`
			MaxPrice    *float64 `json:"maxPrice"`
			ActiveCount int64    `json:"activeCount"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Len(t, out.Items, 3)
	require.Equal(t, int64(2), out.Stats.ActiveCount)
	require.NotNil(t, out.Stats.MinPrice)
}

func TestAdminAuth(t *testing.T) {
	f := newFixture(t)
	u := f.create(t, "Ada", "Lovelace")
	path := "/admin/v1/users/" + u.ID + "/force"

	env := do(t, f.admin, http.MethodDelete, path, nil, "")
	require.Equal(t, resp.CodeUnauthorized, env.Code)

	env = do(t, f.admin, http.MethodDelete, path, nil, "garbage")
	require.Equal(t, resp.CodeUnauthorized, env.Code)

	userTok, err := f.jwter.Issue("someone", "user")
	require.NoError(t, err)
	env = do(t, f.admin, http.MethodDelete, path, nil, userTok)
	require.Equal(t, resp.CodeForbidden, env.Code)

	// 没删掉
	env = do(t, f.api, http.MethodGet, "/api/v1/users/"+u.ID, nil, "")
	require.Equal(t, resp.CodeOK, env.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)
	w := httptest.NewRecorder()
	f.api.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	f.create(t, "m", "m")
	w = httptest.NewRecorder()
	f.api.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "http_requests_total")
	require.Contains(t, w.Body.String(), `users_lifecycle_total{op="create"}`)
}

type orderMod struct {
	name string
	prio int
	seen *[]string
}

func (m orderMod) MountAPI(*gin.RouterGroup) { *m.seen = append(*m.seen, m.name) }
func (m orderMod) Priority() int             { return m.prio }

func TestRegistryOrder(t *testing.T) {
	var seen []string
	reg := NewRegistry(
		orderMod{name: "late", prio: 200, seen: &seen},
		orderMod{name: "early", prio: 10, seen: &seen},
		"not a module",
	)
	reg.MountAllAPI(gin.New().Group("/"))
	reg.MountAllAdmin(gin.New().Group("/"))
	require.Equal(t, []string{"early", "late"}, seen)
}
