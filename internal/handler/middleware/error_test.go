//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"gym-reservation-engine/internal/handler/httperr"
	"gym-reservation-engine/internal/handler/middleware"
	"gym-reservation-engine/internal/pkg/config"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type observation struct {
	method, route, status string
}

type fakeObserver struct {
	mu  sync.Mutex
	got []observation
}

func (o *fakeObserver) ObserveHTTP(method, route, status string, _ float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.got = append(o.got, observation{method, route, status})
}

func newStackRouter(obs middleware.HTTPObserver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	logger := middleware.NewLogger(cfg.Log)

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))
	r.Use(logger.LoggingMiddleware(obs))
	r.Use(middleware.ErrorHandler())

	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/conflict/:id", func(c *gin.Context) { httperr.Abort(c, errs.Mark(errors.New("taken"), errs.ErrConflict)) })
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestMiddlewareStack(t *testing.T) {
	obs := &fakeObserver{}
	r := newStackRouter(obs)

	t.Run("panic becomes internal error", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.Contains(t, w.Body.String(), `"internal_error"`)
	})

	t.Run("business error keeps its status", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/conflict/3", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	t.Run("request id is echoed", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("X-Request-ID", "req-42")
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)

		httptest.AssertHeaders(t, w, map[string]string{"X-Request-ID": "req-42"})
	})

	t.Run("request id header is exposed to browsers", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	})

	t.Run("observer sees route templates", func(t *testing.T) {
		obs.mu.Lock()
		defer obs.mu.Unlock()
		assert.Contains(t, obs.got, observation{"GET", "/conflict/:id", "409"})
		assert.Contains(t, obs.got, observation{"GET", "/ok", "200"})
	})
}
