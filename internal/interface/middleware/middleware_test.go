package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campverse/campground-service/internal/domain/entity"
	"github.com/campverse/campground-service/internal/infrastructure/memory"
	"github.com/campverse/campground-service/internal/interface/middleware"
	"github.com/campverse/campground-service/internal/session"
	"github.com/campverse/campground-service/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	sessions *session.MemoryStore
	tokens   *helpers.TokenManager
	cookies  *helpers.CookieManager
	engine   *gin.Engine
}

func newFixture() *fixture {
	f := &fixture{
		sessions: session.NewMemoryStore(),
		tokens:   helpers.NewTokenManager("test-secret", time.Hour),
		cookies:  helpers.NewCookie("", false),
	}
	f.engine = gin.New()
	f.engine.Use(middleware.Session(f.sessions, f.tokens, f.cookies))
	return f
}

// login creates a session bound to u and returns the matching cookie.
func (f *fixture) login(t *testing.T, u *entity.User) *http.Cookie {
	t.Helper()
	ctx := context.Background()
	sess, err := f.sessions.Create(ctx)
	require.NoError(t, err)
	if u != nil {
		require.NoError(t, f.sessions.BindUser(ctx, sess.ID, u))
	}
	tok, _, err := f.tokens.GenerateSessionToken(sess.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: helpers.SessionCookieName, Value: tok}
}

func doRequest(engine *gin.Engine, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSession_CreatesAnonymousSession(t *testing.T) {
	f := newFixture()
	f.engine.GET("/campgrounds", func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString(middleware.CtxSessionID))
		assert.Empty(t, c.GetString(middleware.CtxUserID))
		c.Status(http.StatusOK)
	})

	w := doRequest(f.engine, http.MethodGet, "/campgrounds", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var found bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == helpers.SessionCookieName && ck.Value != "" {
			found = true
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found, "a fresh session cookie is issued")
}

func TestSession_TamperedCookieGetsFreshSession(t *testing.T) {
	f := newFixture()
	var sid string
	f.engine.GET("/campgrounds", func(c *gin.Context) {
		sid = c.GetString(middleware.CtxSessionID)
		c.Status(http.StatusOK)
	})

	bad := &http.Cookie{Name: helpers.SessionCookieName, Value: "not-a-valid-token"}
	w := doRequest(f.engine, http.MethodGet, "/campgrounds", bad)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, sid, "invalid cookie is replaced, not rejected")
}

func TestSession_RecordsReturnTo(t *testing.T) {
	f := newFixture()
	f.engine.GET("/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	cookie := f.login(t, nil)
	sess, err := f.tokens.ParseSessionToken(cookie.Value)
	require.NoError(t, err)
	sid := sess.SessionID

	doRequest(f.engine, http.MethodGet, "/campgrounds/abc", cookie)
	got, err := f.sessions.TakeReturnTo(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, "/campgrounds/abc", got)

	// consumed once, then empty
	got, err = f.sessions.TakeReturnTo(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, got)

	// auth and static paths are never recorded
	for _, path := range []string{"/login", "/register", "/logout", "/css/app.css", "/js/app.js", "/images/x.png", "/favicon.ico"} {
		doRequest(f.engine, http.MethodGet, path, cookie)
		got, err := f.sessions.TakeReturnTo(context.Background(), sid)
		require.NoError(t, err)
		assert.Empty(t, got, path)
	}

	// non-GET requests are never recorded
	f.engine.POST("/*any", func(c *gin.Context) { c.Status(http.StatusOK) })
	doRequest(f.engine, http.MethodPost, "/campgrounds", cookie)
	got, err = f.sessions.TakeReturnTo(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSession_AuthenticatedSkipsReturnTo(t *testing.T) {
	f := newFixture()
	f.engine.GET("/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	u := &entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	cookie := f.login(t, u)
	sess, err := f.tokens.ParseSessionToken(cookie.Value)
	require.NoError(t, err)

	doRequest(f.engine, http.MethodGet, "/campgrounds/abc", cookie)
	got, err := f.sessions.TakeReturnTo(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequireAuth(t *testing.T) {
	f := newFixture()
	f.engine.POST("/campgrounds", middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := doRequest(f.engine, http.MethodPost, "/campgrounds", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "you must be signed in")

	cookie := f.login(t, &entity.User{ID: "u1", Username: "alice"})
	w = doRequest(f.engine, http.MethodPost, "/campgrounds", cookie)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRequireCampgroundOwner(t *testing.T) {
	f := newFixture()
	store := memory.NewStore()
	ctx := context.Background()

	owner := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, owner))
	intruder := &entity.User{Username: "mallory", Email: "mallory@example.com", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, intruder))

	cg := &entity.Campground{Title: "Misty Pines", OwnerID: owner.ID}
	require.NoError(t, store.Campgrounds().Create(ctx, cg))

	f.engine.DELETE("/campgrounds/:id",
		middleware.RequireAuth(),
		middleware.RequireCampgroundOwner(store.Campgrounds()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	ownerCookie := f.login(t, owner)
	intruderCookie := f.login(t, intruder)

	w := doRequest(f.engine, http.MethodDelete, "/campgrounds/"+cg.ID, intruderCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "you are not the author")

	w = doRequest(f.engine, http.MethodDelete, "/campgrounds/missing-id", ownerCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(f.engine, http.MethodDelete, "/campgrounds/"+cg.ID, ownerCookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireReviewOwner(t *testing.T) {
	f := newFixture()
	store := memory.NewStore()
	ctx := context.Background()

	author := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, author))
	other := &entity.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, other))

	rv := &entity.Review{CampgroundID: "cg1", OwnerID: author.ID, Body: "nice", Rating: 4}
	require.NoError(t, store.Reviews().Create(ctx, rv))

	f.engine.DELETE("/campgrounds/:id/reviews/:revid",
		middleware.RequireAuth(),
		middleware.RequireReviewOwner(store.Reviews()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := doRequest(f.engine, http.MethodDelete, "/campgrounds/cg1/reviews/"+rv.ID, f.login(t, other))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(f.engine, http.MethodDelete, "/campgrounds/cg1/reviews/gone", f.login(t, author))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(f.engine, http.MethodDelete, "/campgrounds/cg1/reviews/"+rv.ID, f.login(t, author))
	assert.Equal(t, http.StatusOK, w.Code)
}
