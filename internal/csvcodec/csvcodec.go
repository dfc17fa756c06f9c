// Package csvcodec serializes customer collections to CSV and parses them
// back. The format is the one the original web client produced: a fixed
// six-column header with every cell double-quoted and internal quotes
// doubled.
//
// Parsing is intentionally naive for compatibility: rows are split on raw
// commas and a single layer of surrounding quotes is stripped per field, so
// commas or escaped quotes inside a quoted field are not handled. This is a
// documented limitation of the format, not a bug to fix here.
package csvcodec

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"crmdesk/internal/crm"
)

// Header is the fixed column set of an exported file.
var Header = []string{"ID", "Full Name", "Email", "Phone Number", "Address", "Created Date"}

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID creates a client-side customer identifier. Imported records
// carry these until the server assigns real identifiers on creation.
func GenerateID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36Digits[rand.Intn(len(base36Digits))]
	}
	return fmt.Sprintf("CUST-%d-%s", time.Now().UnixMilli(), suffix)
}

// Export renders the collection as CSV text, one row per record in the
// collection's current order. An empty collection yields just the header.
func Export(customers []crm.Customer) string {
	lines := make([]string, 0, len(customers)+1)
	lines = append(lines, strings.Join(Header, ","))

	for _, c := range customers {
		row := []string{
			c.ID,
			c.FullName,
			c.Email,
			c.PhoneNumber,
			c.Address,
			c.CreatedDate.UTC().Format(time.RFC3339),
		}
		for i, cell := range row {
			row[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return strings.Join(lines, "\n")
}

// Import parses CSV text produced by Export (or a compatible source). The
// header line is skipped; blank lines and rows with fewer than five fields
// are silently dropped. A missing identifier is backfilled with a freshly
// generated one and a missing or unparseable created date with the current
// instant.
func Import(text string) []crm.Customer {
	lines := strings.Split(text, "\n")
	customers := make([]crm.Customer, 0, len(lines))

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		values := strings.Split(lines[i], ",")
		for j, v := range values {
			values[j] = stripQuotes(v)
		}
		if len(values) < 5 {
			continue
		}

		c := crm.Customer{
			ID:          values[0],
			FullName:    values[1],
			Email:       values[2],
			PhoneNumber: values[3],
			Address:     values[4],
			CreatedDate: time.Now(),
		}
		if c.ID == "" {
			c.ID = GenerateID()
		}
		if len(values) > 5 {
			if t, err := time.Parse(time.RFC3339, values[5]); err == nil {
				c.CreatedDate = t
			}
		}

		customers = append(customers, c)
	}

	return customers
}

// stripQuotes removes one layer of surrounding double quotes. Doubled
// quotes inside the field are left as-is, matching the lossy import.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
