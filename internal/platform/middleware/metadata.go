package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"user-registry/pkg/requestcontext"
)

// maxForwardedHeaderLength bounds X-Forwarded-For and X-Real-IP values so an
// oversized header cannot be smuggled into logs.
const maxForwardedHeaderLength = 500

// MetadataConfig holds configuration for the ClientMetadata middleware.
type MetadataConfig struct {
	// TrustedProxies lists IP prefixes (CIDR notation) that are trusted to set
	// forwarding headers. When empty, forwarding headers are never trusted.
	TrustedProxies []netip.Prefix
}

// ClientMetadata extracts the client IP address and User-Agent from the request
// and adds them to the context for handlers, services and the request logger.
//
// X-Forwarded-For and X-Real-IP are honored only when the direct peer is a
// trusted proxy; otherwise the connection's remote address wins.
func ClientMetadata(cfg *MetadataConfig) func(http.Handler) http.Handler {
	if cfg == nil {
		cfg = &MetadataConfig{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractClientIP(cfg, r)
			userAgent := r.Header.Get("User-Agent")

			ctx := requestcontext.WithClientMetadata(r.Context(), ip, userAgent)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractClientIP(cfg *MetadataConfig, r *http.Request) string {
	remoteIP := parseRemoteAddr(r.RemoteAddr)
	if remoteIP == "" {
		return "unknown"
	}

	if !isTrustedProxy(cfg, remoteIP) {
		return remoteIP
	}

	xff := r.Header.Get("X-Forwarded-For")
	if xff == "" {
		if xri := r.Header.Get("X-Real-IP"); xri != "" && len(xri) <= maxForwardedHeaderLength {
			return strings.TrimSpace(xri)
		}
		return remoteIP
	}

	if len(xff) > maxForwardedHeaderLength {
		return remoteIP
	}

	// The first entry in the chain is the original client.
	clientIP := xff
	if before, _, ok := strings.Cut(xff, ","); ok {
		clientIP = before
	}
	clientIP = strings.TrimSpace(clientIP)

	if _, err := netip.ParseAddr(clientIP); err != nil {
		return remoteIP
	}

	return clientIP
}

func isTrustedProxy(cfg *MetadataConfig, ip string) bool {
	if len(cfg.TrustedProxies) == 0 {
		return false
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}

	for _, prefix := range cfg.TrustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// parseRemoteAddr extracts the IP from RemoteAddr (strips port).
func parseRemoteAddr(remoteAddr string) string {
	if remoteAddr == "" {
		return ""
	}

	// IPv6 with brackets: [::1]:port
	if strings.HasPrefix(remoteAddr, "[") {
		if idx := strings.LastIndex(remoteAddr, "]:"); idx != -1 {
			return remoteAddr[1:idx]
		}
		return strings.Trim(remoteAddr, "[]")
	}

	if idx := strings.LastIndex(remoteAddr, ":"); idx != -1 {
		return remoteAddr[:idx]
	}

	return remoteAddr
}
