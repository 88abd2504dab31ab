package analytics

import "testing"

func TestInitSaltAndHashIP(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if err := InitSalt(s); err != nil {
		t.Fatalf("InitSalt failed: %v", err)
	}

	stored, err := s.GetSetting("hash_salt")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if len(stored) != 64 {
		t.Errorf("stored salt is %d chars, want 64 hex chars", len(stored))
	}

	// InitSalt only runs once per process, so a second call is a no-op.
	if err := InitSalt(s); err != nil {
		t.Fatalf("second InitSalt failed: %v", err)
	}
	if getSalt() != stored {
		t.Error("salt changed after second InitSalt")
	}

	h1 := HashIP("192.0.2.1")
	h2 := HashIP("192.0.2.1")
	h3 := HashIP("192.0.2.2")
	if h1 != h2 {
		t.Errorf("HashIP is not deterministic: %q != %q", h1, h2)
	}
	if h1 == h3 {
		t.Error("different IPs should hash differently")
	}
	if len(h1) != 16 {
		t.Errorf("hash length = %d, want 16", len(h1))
	}
	if h1 == "192.0.2.1" {
		t.Error("hash should not expose the raw IP")
	}
}

func TestIsBot(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36", false},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Version/17.1 Safari/605.1.15", false},
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"Mozilla/5.0 (compatible; bingbot/2.0)", true},
		{"facebookexternalhit/1.1", true},
		{"curl/8.4.0", true},
		{"Wget/1.21", true},
		{"python-requests/2.31.0", true},
		{"Screaming Frog SEO Spider/19.0", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsBot(tt.ua); got != tt.want {
			t.Errorf("IsBot(%q) = %v, want %v", tt.ua, got, tt.want)
		}
	}
}
