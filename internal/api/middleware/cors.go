package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows the configured browser origins. No origins means any
// origin is allowed.
func ConfigCORS(allowedDomains []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	if len(allowedDomains) == 0 {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = allowedDomains
	}
	conf.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	conf.AllowHeaders = append(conf.AllowHeaders, "X-Request-ID")
	conf.ExposeHeaders = []string{"X-Request-ID"}

	return cors.New(conf)
}
