// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize caps order and lesson update bodies. Storefront payloads
	// are a name, a phone number and a short cart.
	MaxJSONBodySize = 100 << 10 // 100 KB
)
