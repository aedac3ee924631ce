// internal/app/system/limits/limits.go
package limits

// Request body size limits for form posts.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxLoginFormSize bounds the sign-in form (username, return URL, CSRF token).
	MaxLoginFormSize = 16 << 10 // 16 KB

	// MaxSmallFormSize bounds single-button forms such as logout and the
	// theme toggle.
	MaxSmallFormSize = 4 << 10 // 4 KB
)
