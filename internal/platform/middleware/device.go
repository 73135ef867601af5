package middleware

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"user-registry/pkg/requestcontext"
)

// Device summarizes the client's User-Agent into a short device descriptor
// (e.g. "firefox/128 linux desktop") and injects it into the context for the
// request logger. It must be registered after ClientMetadata, which extracts
// the raw User-Agent.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if ua := requestcontext.UserAgent(ctx); ua != "" {
			ctx = requestcontext.WithDevice(ctx, summarizeUserAgent(ua))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// summarizeUserAgent reduces a raw User-Agent string to "browser/major os platform".
// Raw User-Agents are too high-entropy to log; the summary keeps only what is
// useful for debugging client-specific issues.
func summarizeUserAgent(userAgentString string) string {
	ua := useragent.New(userAgentString)

	browser, version := ua.Browser()
	browser = strings.ToLower(strings.TrimSpace(browser))
	if browser == "" {
		browser = "unknown"
	}

	major := "unknown"
	if version != "" {
		if before, _, _ := strings.Cut(version, "."); before != "" {
			major = before
		}
	}

	os := strings.ToLower(strings.TrimSpace(ua.OSInfo().Name))
	if os == "" {
		os = "unknown"
	}

	platform := "desktop"
	if ua.Mobile() {
		platform = "mobile"
	} else if ua.Bot() {
		platform = "bot"
	}

	return browser + "/" + major + " " + os + " " + platform
}
