package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// AllowedOrigins is the CORS allowlist: the local client dev server plus
// whatever the deployment configures through CLIENT_URL (the deployed
// client) and ALLOWED_ORIGINS (comma-separated extras).
var AllowedOrigins = buildAllowedOrigins(os.Getenv("CLIENT_URL"), os.Getenv("ALLOWED_ORIGINS"))

func buildAllowedOrigins(clientURL, extras string) []string {
	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}

	if clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(extras, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
