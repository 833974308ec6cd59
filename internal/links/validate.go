package links

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// shortcutPattern allows alphanumerics with interior hyphens and
// underscores, or a single alphanumeric character.
var shortcutPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// reservedPaths cannot be used as shortcuts because they collide with
// system routes.
var reservedPaths = map[string]struct{}{
	"_manage": {},
	"_api":    {},
	"admin":   {},
	"api":     {},
}

// ValidateShortcut checks that a shortcut is storable. It returns a
// *ValidationError describing the first failing rule, or nil.
func ValidateShortcut(shortcut string) error {
	if shortcut == "" {
		return &ValidationError{Message: "Shortcut is required"}
	}

	if len(shortcut) < 1 || len(shortcut) > 100 {
		return &ValidationError{Message: "Shortcut must be 1-100 characters"}
	}

	if !shortcutPattern.MatchString(shortcut) {
		return &ValidationError{
			Message: "Shortcut must be alphanumeric (hyphens/underscores allowed, no leading/trailing hyphens)",
		}
	}

	if _, ok := reservedPaths[strings.ToLower(shortcut)]; ok {
		return &ValidationError{Message: fmt.Sprintf("%q is a reserved path", shortcut)}
	}

	// The pattern above already rejects leading underscores; kept as a
	// second guard so the reserved `_` prefix stays closed even if the
	// pattern changes.
	if strings.HasPrefix(strings.ToLower(shortcut), "_") {
		return &ValidationError{Message: "Shortcuts cannot start with underscore"}
	}

	return nil
}

// IsValidURL reports whether raw is a structurally valid http(s) URL.
// Syntactic check only: no DNS, no reachability.
func IsValidURL(raw string) bool {
	if raw == "" {
		return false
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return false
	}

	u, err := url.Parse(raw)

	return err == nil && u.Host != ""
}
