package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"partner@festival.org", true},
		{"first.last+tag@sub.example.co", true},
		{"no-at-sign.example.com", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Fatalf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Fatalf("expected short password to be rejected")
	}
	if ok, msg := ValidatePassword("longenough"); !ok {
		t.Fatalf("expected password to be accepted, got %q", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("SanitizeInput returned %q", got)
	}
}

func TestClampPercentage(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{140, 100},
	}

	for _, tt := range tests {
		if got := ClampPercentage(tt.in); got != tt.want {
			t.Fatalf("ClampPercentage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
