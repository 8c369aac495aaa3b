package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// Registration field validators. Messages are surfaced to the client as-is.

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s\x{0900}-\x{097F}.\-]+$`)

	// valid leading digits for Nepali mobile numbers
	phonePrefixes = []string{"98", "97", "96", "95", "94", "93", "92", "91", "90", "85", "84", "83", "82", "81", "80"}

	phoneStrip = regexp.MustCompile(`[\s\-()]`)
)

func ValidateEmail(email string) (bool, string) {
	if strings.TrimSpace(email) == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Please enter a valid email address"
	}
	return true, ""
}

func ValidateNepaliPhoneNumber(phone string) (bool, string) {
	if strings.TrimSpace(phone) == "" {
		return false, "Contact number is required"
	}
	clean := phoneStrip.ReplaceAllString(phone, "")
	if !phoneRegex.MatchString(clean) {
		return false, "Please enter a valid 10-digit Nepali phone number"
	}
	prefix := clean[:2]
	for _, p := range phonePrefixes {
		if p == prefix {
			return true, ""
		}
	}
	return false, "Please enter a valid Nepali mobile number (must start with 98, 97, 96, etc.)"
}

func ValidateFullName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "Full name is required"
	}
	if len(trimmed) < 2 {
		return false, "Full name must be at least 2 characters long"
	}
	if len(trimmed) > 100 {
		return false, "Full name must be less than 100 characters"
	}
	if !nameRegex.MatchString(trimmed) {
		return false, "Name can only contain letters, spaces, dots, and hyphens"
	}
	return true, ""
}

func ValidateHotelName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "Hotel name is required"
	}
	if len(trimmed) < 2 {
		return false, "Hotel name must be at least 2 characters long"
	}
	if len(trimmed) > 100 {
		return false, "Hotel name must be less than 100 characters"
	}
	return true, ""
}

func ValidateHotelLocation(location string) (bool, string) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return false, "Hotel location is required"
	}
	if len(trimmed) < 2 {
		return false, "Hotel location must be at least 2 characters long"
	}
	if len(trimmed) > 200 {
		return false, "Hotel location must be less than 200 characters"
	}
	return true, ""
}

// ValidateProfilePhotoURL accepts empty values; the photo is optional.
func ValidateProfilePhotoURL(raw string) (bool, string) {
	if strings.TrimSpace(raw) == "" {
		return true, ""
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" {
		return false, "Please enter a valid URL"
	}
	lower := strings.ToLower(raw)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"} {
		if strings.Contains(lower, ext) {
			return true, ""
		}
	}
	for _, host := range []string{"imgur.com", "cloudinary.com", "amazonaws.com", "googleusercontent.com"} {
		if strings.Contains(lower, host) {
			return true, ""
		}
	}
	return false, "Please enter a valid image URL (jpg, png, gif, webp, or from image hosting services)"
}

// FormatNepaliPhoneNumber formats a clean 10-digit number as XXX-XXX-XXXX.
func FormatNepaliPhoneNumber(phone string) string {
	clean := phoneStrip.ReplaceAllString(phone, "")
	if len(clean) == 10 {
		return clean[:3] + "-" + clean[3:6] + "-" + clean[6:]
	}
	return phone
}
