package dto

// CreateCustomerRequest represents the request to create a new customer
type CreateCustomerRequest struct {
	FullName    string `json:"fullName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10"`
	Address     string `json:"address" validate:"required,min=5,max=500"`
}

// UpdateCustomerRequest represents a partial update. Absent or empty fields
// leave the stored value unchanged.
type UpdateCustomerRequest struct {
	FullName    string `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,min=10"`
	Address     string `json:"address" validate:"omitempty,min=5,max=500"`
}

// SearchCustomersRequest represents the search query parameters
type SearchCustomersRequest struct {
	Query string `query:"query" validate:"required,min=1"`
}

// SeedCustomersRequest represents the dev-only request to seed fake data
type SeedCustomersRequest struct {
	Count int `query:"count" validate:"omitempty,min=1,max=1000"`
}
