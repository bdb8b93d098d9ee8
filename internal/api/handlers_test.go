package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"feedback_system/internal/domain"
	"feedback_system/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds the full router on an in-memory database and an
// in-process redis, exactly as main wires it
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // In-memory sqlite is per-connection
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Feedback{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	mgr := session.NewManager(rdb, "test-secret", time.Hour)

	return NewRouter(db, mgr, "../../web/templates/*.html"), db
}

// doGet performs a GET request carrying the given cookies
func doGet(r http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doPost performs a form POST carrying the given cookies
func doPost(r http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the session cookie from a response, if set
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value != "" {
			return ck
		}
	}
	return nil
}

// registerForm builds a complete registration form for username
func registerForm(username, password string) url.Values {
	return url.Values{
		"username":   {username},
		"password":   {password},
		"email":      {username + "@example.com"},
		"first_name": {"Test"},
		"last_name":  {"User"},
	}
}

// signup registers username through the HTTP surface and returns the
// logged-in session cookie
func signup(t *testing.T, r http.Handler, username, password string) []*http.Cookie {
	t.Helper()
	w := doPost(r, "/register", registerForm(username, password), nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/users/"+username, w.Header().Get("Location"))
	ck := sessionCookie(w)
	require.NotNil(t, ck)
	return []*http.Cookie{ck}
}
