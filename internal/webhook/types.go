package webhook

// SecurityConfig holds security settings for the voice-AI call-event
// webhook endpoint.
type SecurityConfig struct {
	Secret          string   // shared secret for HMAC signature verification
	AllowedIPs      []string // source IP allowlist, empty disables the check
	RateLimitPerMin int      // max requests per minute per source
}
