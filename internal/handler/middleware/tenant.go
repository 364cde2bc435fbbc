package middleware

import (
	"net/http"
	"strings"

	"barberbook/internal/domain/tenant"
	"barberbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const ctxTenantSlugKey = "tenant_slug"

// TenantResolver resolves the tenant from the request. The slug arrives either
// as a path parameter on API routes (which wins) or as the leftmost label of
// {slug}.{platform domain}. A tenant host owns the whole path space outside
// /api: those requests are rewritten onto the public booking routes and
// re-dispatched, so GET / on fadehouse.example.com serves the fadehouse
// booking page. The bare platform domain and reserved subdomains carry no
// tenant scope and pass through untouched.
func TenantResolver(engine *gin.Engine, cfg config.PlatformConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.Param("slug"); raw != "" {
			if slug, err := tenant.NewSlug(raw); err == nil {
				c.Set(ctxTenantSlugKey, slug.Value())
			}
			c.Next()
			return
		}

		slug, ok := tenant.ResolveHost(c.Request.Host, cfg.Domain)
		if !ok {
			c.Next()
			return
		}
		c.Set(ctxTenantSlugKey, slug.Value())

		if path := c.Request.URL.Path; !strings.HasPrefix(path, "/api/") && path != "/health" {
			if path == "/" {
				path = ""
			}
			c.Request.URL.Path = "/api/public/" + slug.Value() + path
			engine.HandleContext(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// TenantFallback is the NoRoute handler. When the rewrite did not land on a
// registered route, tenant-host requests are sent to their booking page with a
// client redirect; everything else is a plain 404.
func TenantFallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		if slug := GetTenantSlug(c); slug != "" {
			c.Redirect(http.StatusFound, "/api/public/"+slug)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}
}

// RequireTenant guards routes that are meaningless without a tenant scope.
// Combined with the resolver's slug validation it rejects reserved and
// malformed slugs before any storage lookup.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetTenantSlug(c) == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown booking page"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetTenantSlug(c *gin.Context) string {
	if v, exists := c.Get(ctxTenantSlugKey); exists {
		if slug, ok := v.(string); ok {
			return slug
		}
	}
	return ""
}
