package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// flashCookie pulls the flash cookie out of a recorded response
func flashCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookieName {
			return ck
		}
	}
	return nil
}

func TestSetAndPop(t *testing.T) {
	// Set writes the cookie on one response
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Set(c, Danger, "You need to log in!")

	ck := flashCookie(t, w)
	require.NotNil(t, ck)
	require.NotEmpty(t, ck.Value)

	// Pop reads it back on the next request and clears it
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(ck)

	msg := Pop(c2)
	require.NotNil(t, msg)
	assert.Equal(t, Danger, msg.Category)
	assert.Equal(t, "You need to log in!", msg.Text)

	cleared := flashCookie(t, w2)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestPopWithoutCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, Pop(c))
}

func TestPopGarbageCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookieName, Value: "%%not-base64%%"})

	assert.Nil(t, Pop(c))
}
