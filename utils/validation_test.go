package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"owner@example.com", true},
		{"a.b+tag@sub.domain.np", true},
		{"", false},
		{"   ", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"spaces in@mail.com", false},
	}
	for _, tt := range tests {
		got, _ := ValidateEmail(tt.email)
		if got != tt.valid {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.valid)
		}
	}
}

func TestValidateNepaliPhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"9841234567", true},
		{"984-123-4567", true},
		{"984 123 4567", true},
		{"(984)1234567", true},
		{"8012345678", true},
		{"", false},
		{"123456789", false},    // 9 digits
		{"12345678901", false},  // 11 digits
		{"1234567890", false},   // bad prefix
		{"9912345678", false},   // 99 not a mobile prefix
		{"98412345ab", false},
	}
	for _, tt := range tests {
		got, _ := ValidateNepaliPhoneNumber(tt.phone)
		if got != tt.valid {
			t.Errorf("ValidateNepaliPhoneNumber(%q) = %v, want %v", tt.phone, got, tt.valid)
		}
	}
}

func TestValidateFullName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"Ram Bahadur", true},
		{"A. B. Shrestha", true},
		{"राम बहादुर", true},
		{"Jean-Pierre", true},
		{"", false},
		{"X", false},
		{"Name123", false},
		{"Name!", false},
	}
	for _, tt := range tests {
		got, _ := ValidateFullName(tt.name)
		if got != tt.valid {
			t.Errorf("ValidateFullName(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestValidateProfilePhotoURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"", true}, // optional
		{"https://example.com/me.png", true},
		{"https://i.imgur.com/abc123", true},
		{"https://bucket.amazonaws.com/photo", true},
		{"https://example.com/page.html", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		got, _ := ValidateProfilePhotoURL(tt.url)
		if got != tt.valid {
			t.Errorf("ValidateProfilePhotoURL(%q) = %v, want %v", tt.url, got, tt.valid)
		}
	}
}

func TestFormatNepaliPhoneNumber(t *testing.T) {
	if got := FormatNepaliPhoneNumber("9841234567"); got != "984-123-4567" {
		t.Errorf("got %q, want 984-123-4567", got)
	}
	if got := FormatNepaliPhoneNumber("984-123-4567"); got != "984-123-4567" {
		t.Errorf("got %q, want 984-123-4567", got)
	}
	// anything that is not 10 digits comes back untouched
	if got := FormatNepaliPhoneNumber("12345"); got != "12345" {
		t.Errorf("got %q, want 12345", got)
	}
}
