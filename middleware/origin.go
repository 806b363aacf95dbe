package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// SameOrigin rejects state-changing requests sent from another site. A
// request passes when its Origin matches the console's own host or one of
// the allowed origins. Without an Origin header, a Sec-Fetch-Site of
// cross-site is refused.
func SameOrigin(allowed []string) gin.HandlerFunc {
	trusted := make([]string, 0, len(allowed))
	for _, o := range allowed {
		trusted = append(trusted, strings.TrimRight(strings.ToLower(o), "/"))
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" {
			if sameHost(origin, c.Request.Host) || slices.Contains(trusted, strings.ToLower(origin)) {
				c.Next()
				return
			}
			deny(c, "origin", origin)
			return
		}
		if c.GetHeader("Sec-Fetch-Site") == "cross-site" {
			deny(c, "sec-fetch-site", "cross-site")
			return
		}
		c.Next()
	}
}

func sameHost(origin, host string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, host)
}

func deny(c *gin.Context, header, value string) {
	slog.Warn("Cross-site request refused", "path", c.Request.URL.Path, header, value)
	c.JSON(http.StatusForbidden, gin.H{"error": "Cross-site requests are not allowed"})
	c.Abort()
}
