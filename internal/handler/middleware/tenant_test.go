//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTenantRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.TenantResolver(engine, config.PlatformConfig{Domain: "bookabarber.test"}))
	engine.NoRoute(middleware.TenantFallback())

	public := engine.Group("/api/public")
	public.Use(middleware.RequireTenant())
	public.GET("/:slug", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"slug": middleware.GetTenantSlug(c)})
	})
	public.GET("/:slug/calendar", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "calendar"})
	})
	return engine
}

func performHostRequest(t *testing.T, engine *gin.Engine, host, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestTenantResolverHostRewrite(t *testing.T) {
	t.Run("テナントホストのルートは予約ページに書き換える", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "fadehouse.bookabarber.test", "/")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"fadehouse"`)
	})

	t.Run("サブパスも公開ルートにマップされる", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "fadehouse.bookabarber.test", "/calendar")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "calendar")
	})

	t.Run("マッチしないパスは予約ページへリダイレクト", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "fadehouse.bookabarber.test", "/pricing/legacy")

		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/api/public/fadehouse", rec.Header().Get("Location"))
	})

	t.Run("APIパスは書き換えない", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "fadehouse.bookabarber.test", "/api/public/fadehouse")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "fadehouse")
	})

	t.Run("素のプラットフォームドメインは素通し", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "bookabarber.test", "/")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("予約サブドメインは素通し", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "www.bookabarber.test", "/")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTenantResolverPathParam(t *testing.T) {
	t.Run("パスパラメータのスラッグが優先", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "other.bookabarber.test", "/api/public/fadehouse")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"fadehouse"`)
	})

	t.Run("大文字スラッグは正規化される", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "bookabarber.test", "/api/public/FadeHouse")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"fadehouse"`)
	})
}

func TestRequireTenant(t *testing.T) {
	t.Run("予約語スラッグは404", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "bookabarber.test", "/api/public/admin")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unknown booking page")
	})

	t.Run("不正なスラッグは404", func(t *testing.T) {
		engine := newTenantRouter()
		rec := performHostRequest(t, engine, "bookabarber.test", "/api/public/a!")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
