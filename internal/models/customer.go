package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FullNameMinLength = 2
	FullNameMaxLength = 100
	AddressMinLength  = 5
	AddressMaxLength  = 500
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\-+()]{10,}$`)
)

// Customer is a CRM customer record. Email is normalized to lowercase and
// unique across the collection; the uniqueness violation surfaces as a
// duplicate-key error at the repository layer.
type Customer struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName    string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(50);not null" json:"phoneNumber"`
	Address     string    `gorm:"type:varchar(500);not null" json:"address"`
	CreatedAt   time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	c.Normalize()

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Customer) BeforeUpdate(tx *gorm.DB) error {
	// Skip validation for map-based updates; only the touched fields are
	// present and the struct is empty
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	c.Normalize()
	return c.Validate()
}

// Normalize trims free-text fields and lowercases the email, mirroring the
// server-side normalization the web client relies on.
func (c *Customer) Normalize() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Address = strings.TrimSpace(c.Address)
}

func (c *Customer) Validate() error {
	if c.FullName == "" {
		return errors.New("full name is required")
	}

	if n := utf8.RuneCountInString(c.FullName); n < FullNameMinLength || n > FullNameMaxLength {
		return fmt.Errorf("full name must be between %d and %d characters", FullNameMinLength, FullNameMaxLength)
	}

	if c.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(c.Email) {
		return errors.New("invalid email format")
	}

	if c.PhoneNumber == "" {
		return errors.New("phone number is required")
	}

	if !phoneRegex.MatchString(c.PhoneNumber) {
		return errors.New("invalid phone number format")
	}

	if c.Address == "" {
		return errors.New("address is required")
	}

	if n := utf8.RuneCountInString(c.Address); n < AddressMinLength || n > AddressMaxLength {
		return fmt.Errorf("address must be between %d and %d characters", AddressMinLength, AddressMaxLength)
	}

	return nil
}

func (c *Customer) TableName() string {
	return "customers"
}
