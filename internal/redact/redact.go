// Package redact provides utilities for scrubbing sensitive information
// from strings before they are logged. Error messages can carry connection
// strings, credentials, bearer tokens, or email addresses; everything that
// leaves the process through the log stream passes through here first.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedSQLValuesPlaceholder  = "VALUES [SQL_VALUES_REDACTED]"
	RedactedConnStringPlaceholder = "[REDACTED_CONNECTION]"
)

// Precompiled regex patterns, ordered from most to least specific.
var (
	// Database connection strings with embedded credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@[^\s]+`)

	// JWT tokens: three base64url segments, first two starting with eyJ.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Passwords, secrets, and keys in key=value or key: value form.
	credentialRegex = regexp.MustCompile(
		`(?i)(password|passwd|pwd|secret|api[_-]?key|token)(['"\s:=]+)[^'"&\s]{3,}`,
	)

	// Email addresses.
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// SQL VALUES lists, which may carry row data verbatim.
	sqlValuesRegex = regexp.MustCompile(`(?i)VALUES\s*\([^)]*\)`)
)

// String scrubs sensitive fragments from s and returns the result.
func String(s string) string {
	if s == "" {
		return s
	}

	s = dbConnRegex.ReplaceAllString(s, RedactedConnStringPlaceholder)
	s = jwtTokenRegex.ReplaceAllString(s, RedactedCredentialPlaceholder)
	s = credentialRegex.ReplaceAllString(s, "$1$2"+RedactedCredentialPlaceholder)
	s = sqlValuesRegex.ReplaceAllString(s, RedactedSQLValuesPlaceholder)
	s = emailRegex.ReplaceAllString(s, RedactedEmailPlaceholder)

	return s
}

// Error scrubs the error's message. A nil error yields the empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
