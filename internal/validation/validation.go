// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"strings"
)

const (
	minNameLength     = 2
	maxNameLength     = 50
	minPasswordLength = 6
	maxPasswordLength = 128
)

// ValidateName checks the display name used at registration.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minNameLength {
		return fmt.Errorf("name must be at least %d characters long", minNameLength)
	}
	if len(trimmed) > maxNameLength {
		return fmt.Errorf("name cannot be more than %d characters", maxNameLength)
	}
	return nil
}

// ValidateEmail checks for a plausible address. The deliverability check is
// the reset email itself; this only rejects obviously malformed input.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("please provide a valid email address")
	}
	if strings.ContainsAny(email, " \t") {
		return fmt.Errorf("please provide a valid email address")
	}
	return nil
}

// ValidatePassword checks the minimum password policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLength)
	}
	return nil
}
