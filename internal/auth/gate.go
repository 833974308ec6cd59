// Package auth implements the bearer-token gate guarding the management
// API. A single shared secret, compared per request; no sessions, no users.
package auth

import (
	"fmt"
	"strings"
)

// MetadataKey marks a Huma operation as requiring the bearer token.
const MetadataKey = "golinks-auth"

// Verify checks an Authorization header value against the configured
// secret. On failure it returns a client-facing message, possibly with a
// diagnostic hint (length mismatch, padding or whitespace differences) to
// help an operator spot a mangled token. The secret itself never appears
// in the message.
func Verify(header, secret string) (bool, string) {
	if header == "" {
		return false, "Unauthorized: Missing Authorization header"
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return false, "Unauthorized: Invalid Authorization header format"
	}

	if parts[1] != secret {
		return false, "Unauthorized: Invalid token" + tokenHint(parts[1], secret)
	}

	return true, ""
}

// tokenHint describes how a rejected token differs from the expected one
// without revealing the expected value.
func tokenHint(got, want string) string {
	if len(got) != len(want) {
		return fmt.Sprintf(" (Token length mismatch: received %d chars, expected %d)",
			len(got), len(want))
	}

	if stripPadding(got) == stripPadding(want) {
		return " (Hint: Check for trailing = signs or whitespace)"
	}

	return ""
}

func stripPadding(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '=', ' ', '\t', '\n', '\r':
			return -1
		default:
			return r
		}
	}, s)
}
