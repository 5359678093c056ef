package middleware

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
)

// SameOrigin is middleware that only lets through requests sent by the window
// itself: the Host must be a loopback address and the browser must not mark
// the request as cross-site.
func SameOrigin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if reason := rejectReason(r); reason != "" {
				appLogger.CtxWarn(r.Context(), constant.MsgForbiddenOrigin, appLogger.LoggerInfo{
					ContextFunction: constant.CtxSameOrigin,
					Error: &appLogger.CustomError{
						Code:    constant.ErrCodeWindowOrigin,
						Message: reason,
						Type:    constant.ErrTypeWindow,
					},
					Data: map[string]interface{}{
						constant.DataHost:   r.Host,
						constant.DataOrigin: r.Header.Get(constant.HeaderOrigin),
					},
				})
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectReason(r *http.Request) string {
	// A rebound DNS name still carries its own Host
	if !isLoopbackHost(r.Host) {
		return "host is not a loopback address"
	}

	if r.Header.Get(constant.HeaderSecFetchSite) == "cross-site" {
		return "cross-site request"
	}

	// Requests without an Origin come from non-browser clients
	origin := r.Header.Get(constant.HeaderOrigin)
	if origin == "" {
		return ""
	}
	parsed, err := url.Parse(origin)
	if err != nil || !strings.EqualFold(parsed.Host, r.Host) {
		return "origin does not match host"
	}
	return ""
}

func isLoopbackHost(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")

	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
