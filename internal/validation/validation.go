// Package validation implements client-side form validation for customer
// records. The rules are deliberately stricter than the server's on the
// length caps (name <=50 vs 100, address <=100 vs 500); both layers are kept
// explicit because the backing API enforces its own bounds independently.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"crmdesk/internal/crm"
)

const (
	FullNameMinLength = 2
	FullNameMaxLength = 50
	AddressMinLength  = 5
	AddressMaxLength  = 100
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\-+()]{10,}$`)
)

// ValidEmail reports whether the email has a local@domain.tld shape.
// No full RFC 5322 validation is attempted.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidPhoneNumber reports whether the phone number consists of digits,
// spaces, hyphens, plus signs and parentheses, at least 10 characters.
func ValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateForm checks every field of the candidate form independently and
// returns a map of field name to human-readable error for each failing
// field. An empty map means the form is valid. Callers decide whether to
// block submission; this function has no side effects.
func ValidateForm(data crm.FormData) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(data.FullName) == "" {
		errs["fullName"] = "Full name is required"
	} else if utf8.RuneCountInString(data.FullName) < FullNameMinLength {
		errs["fullName"] = fmt.Sprintf("Full name must be at least %d characters", FullNameMinLength)
	} else if utf8.RuneCountInString(data.FullName) > FullNameMaxLength {
		errs["fullName"] = fmt.Sprintf("Full name must not exceed %d characters", FullNameMaxLength)
	}

	if strings.TrimSpace(data.Email) == "" {
		errs["email"] = "Email is required"
	} else if !ValidEmail(data.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(data.PhoneNumber) == "" {
		errs["phoneNumber"] = "Phone number is required"
	} else if !ValidPhoneNumber(data.PhoneNumber) {
		errs["phoneNumber"] = "Please enter a valid phone number"
	}

	if strings.TrimSpace(data.Address) == "" {
		errs["address"] = "Address is required"
	} else if utf8.RuneCountInString(data.Address) < AddressMinLength {
		errs["address"] = fmt.Sprintf("Address must be at least %d characters", AddressMinLength)
	} else if utf8.RuneCountInString(data.Address) > AddressMaxLength {
		errs["address"] = fmt.Sprintf("Address must not exceed %d characters", AddressMaxLength)
	}

	return errs
}
