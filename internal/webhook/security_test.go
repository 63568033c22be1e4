package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Secret: "secret", RateLimitPerMin: 60})
	payload := []byte(`{"call_id":"c1"}`)

	t.Run("valid", func(t *testing.T) {
		if err := v.ValidateSignature(payload, sign("secret", payload)); err != nil {
			t.Errorf("expected valid signature, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if err := v.ValidateSignature(payload, sign("other", payload)); err == nil {
			t.Error("expected signature failure")
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		if err := v.ValidateSignature([]byte(`{"call_id":"c2"}`), sign("secret", payload)); err == nil {
			t.Error("expected signature failure")
		}
	})

	t.Run("missing prefix", func(t *testing.T) {
		if err := v.ValidateSignature(payload, "deadbeef"); err == nil {
			t.Error("expected format failure")
		}
	})

	t.Run("bad hex", func(t *testing.T) {
		if err := v.ValidateSignature(payload, "sha256=zzzz"); err == nil {
			t.Error("expected hex failure")
		}
	})

	t.Run("no secret configured", func(t *testing.T) {
		empty := NewSecurityValidator(SecurityConfig{})
		if err := empty.ValidateSignature(payload, sign("", payload)); err == nil {
			t.Error("expected error when no secret configured")
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	tests := []struct {
		name       string
		allowedIPs []string
		remoteAddr string
		xff        string
		wantErr    bool
	}{
		{"no restriction", nil, "203.0.113.5:1234", "", false},
		{"exact match", []string{"203.0.113.5"}, "203.0.113.5:1234", "", false},
		{"not listed", []string{"203.0.113.5"}, "198.51.100.7:1234", "", true},
		{"cidr match", []string{"203.0.113.0/24"}, "203.0.113.99:1234", "", false},
		{"cidr miss", []string{"203.0.113.0/24"}, "198.51.100.7:1234", "", true},
		{"forwarded-for honored", []string{"203.0.113.5"}, "10.0.0.1:1234", "203.0.113.5, 10.0.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSecurityValidator(SecurityConfig{AllowedIPs: tt.allowedIPs, RateLimitPerMin: 60})
			r := httptest.NewRequest(http.MethodPost, "/webhook/call-events", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			err := v.ValidateIPAddress(r)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIPAddress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckRateLimit(t *testing.T) {
	// 60/min with burst 6; the burst should drain, then reject.
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 60})

	allowed := 0
	for i := 0; i < 20; i++ {
		if err := v.CheckRateLimit("voice_ai"); err == nil {
			allowed++
		}
	}
	if allowed == 0 || allowed == 20 {
		t.Errorf("expected burst then throttle, allowed %d/20", allowed)
	}

	// A different source gets its own bucket.
	if err := v.CheckRateLimit("other"); err != nil {
		t.Errorf("fresh source should be allowed: %v", err)
	}
}
