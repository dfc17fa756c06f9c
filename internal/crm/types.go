// Package crm holds the customer record shapes shared by the client-side
// packages: the transformation pipeline, the CSV codec, the remote service
// client and the store. The server keeps its own persistence model under
// internal/models; these types are the session-local view of that data.
package crm

import "time"

// Customer is the client-side view of a customer record. The ID and
// CreatedDate are server-assigned; everything else is user-entered.
type Customer struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	CreatedDate time.Time `json:"createdDate"`
}

// DeletedCustomer is a customer snapshot taken the moment a delete was
// confirmed by the server, held in the undo buffer.
type DeletedCustomer struct {
	Customer
	DeletedAt time.Time `json:"deletedAt"`
}

// FormData carries the user-editable fields of a customer, used for both
// create and update submissions.
type FormData struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// FormData extracts the editable fields from a customer record.
func (c Customer) FormData() FormData {
	return FormData{
		FullName:    c.FullName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
}

// SortBy selects the sort key for the transformation pipeline.
type SortBy string

const (
	SortByName SortBy = "name"
	SortByDate SortBy = "date"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortOption pairs a sort key with a direction.
type SortOption struct {
	By    SortBy    `json:"by"`
	Order SortOrder `json:"order"`
}

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
