package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danuarta/pos-backend/router"
	"github.com/danuarta/pos-backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func openRouter(t *testing.T) *gin.Engine {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	return router.SetupRouter(db)
}

func TestPing(t *testing.T) {
	r := openRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

// The per-IP limiter has to sit in every registered handler chain, so a
// burst over the limit from one client gets throttled.
func TestRateLimiterAppliesToRoutes(t *testing.T) {
	r := openRouter(t)

	var last int
	for i := 0; i < 51; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
		if i < 50 {
			require.Equal(t, http.StatusOK, last, "request %d", i)
		}
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
