// Package pipeline implements the pure list transformations applied to the
// customer collection before display: filter, then sort, then paginate.
// Every function returns a fresh slice and never mutates its input.
package pipeline

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"crmdesk/internal/crm"
)

var nameCollator = collate.New(language.English, collate.Loose)

// Search returns the customers whose full name or email contains the
// trimmed search term, case-insensitively. A blank term returns the input
// unchanged. Phone and address are not matched.
func Search(customers []crm.Customer, term string) []crm.Customer {
	if strings.TrimSpace(term) == "" {
		return customers
	}

	needle := strings.ToLower(term)
	matched := make([]crm.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.FullName), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Sort returns a sorted copy of the customers. Name comparison is
// locale-aware; date comparison uses the creation timestamp. The sort is
// stable so records with equal keys keep their relative order across
// repeated calls.
func Sort(customers []crm.Customer, opt crm.SortOption) []crm.Customer {
	sorted := make([]crm.Customer, len(customers))
	copy(sorted, customers)

	sort.SliceStable(sorted, func(i, j int) bool {
		var cmp int
		switch opt.By {
		case crm.SortByName:
			cmp = nameCollator.CompareString(sorted[i].FullName, sorted[j].FullName)
		case crm.SortByDate:
			switch {
			case sorted[i].CreatedDate.Before(sorted[j].CreatedDate):
				cmp = -1
			case sorted[i].CreatedDate.After(sorted[j].CreatedDate):
				cmp = 1
			}
		}

		if opt.Order == crm.OrderDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted
}

// Page is one slice of a paginated collection.
type Page struct {
	Data  []crm.Customer
	Total int
	Pages int
}

// Paginate slices the already filtered and sorted collection into the
// 1-based page of the given size. A page past the end yields an empty
// slice; clamping to the last page is the caller's responsibility.
func Paginate(customers []crm.Customer, page, pageSize int) Page {
	total := len(customers)
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	if start < 0 || start >= total {
		return Page{Data: []crm.Customer{}, Total: total, Pages: pages}
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{Data: customers[start:end], Total: total, Pages: pages}
}
