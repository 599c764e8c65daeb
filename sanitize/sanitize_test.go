package sanitize

import "testing"

func TestAppID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "my-app_1.2", "my-app_1.2"},
		{"spaces stripped", "my app", "myapp"},
		{"symbols stripped", "app!@#$%id", "appid"},
		{"unicode stripped", "appé™id", "appid"},
		{"empty", "", ""},
		{"only invalid", "!!!", ""},
		{"slashes stripped", "team/app", "teamapp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppID(tt.input); got != tt.want {
				t.Errorf("AppID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"custom+scheme://host", true},
		{"ftp://files.example.com/a/b", true},
		{"example.com", false},
		{"://nohost", false},
		{"https://", false},
		{"https://host with space", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidURL(tt.input); got != tt.want {
				t.Errorf("ValidURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidHeaderName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Content-Type", true},
		{"x-custom_header.v2", true},
		{"ETag", true},
		{"", false},
		{"Bad Header", false},
		{"Bad:Header", false},
		{"héader", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidHeaderName(tt.input); got != tt.want {
				t.Errorf("ValidHeaderName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidHeaderValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain", "application/json", true},
		{"with spaces", "max-age=3600, public", true},
		{"with tab", "a\tb", true},
		{"empty", "", true},
		{"newline", "a\nb", false},
		{"carriage return", "a\rb", false},
		{"non-ascii", "café", false},
		{"del byte", "a\x7fb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidHeaderValue(tt.input); got != tt.want {
				t.Errorf("ValidHeaderValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
