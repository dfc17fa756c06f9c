package pipeline

import (
	"testing"
	"time"

	"crmdesk/internal/crm"

	"github.com/stretchr/testify/assert"
)

func fixture() []crm.Customer {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []crm.Customer{
		{ID: "1", FullName: "Grace Hopper", Email: "grace@navy.mil", CreatedDate: base.Add(3 * time.Hour)},
		{ID: "2", FullName: "Ada Lovelace", Email: "ada@analytical.dev", CreatedDate: base.Add(2 * time.Hour)},
		{ID: "3", FullName: "Alan Turing", Email: "alan@bletchley.uk", CreatedDate: base.Add(time.Hour)},
		{ID: "4", FullName: "Adele Goldberg", Email: "adele@parc.example", CreatedDate: base},
	}
}

func ids(customers []crm.Customer) []string {
	out := make([]string, len(customers))
	for i, c := range customers {
		out[i] = c.ID
	}
	return out
}

func TestSearch_BlankTermReturnsInput(t *testing.T) {
	customers := fixture()

	assert.Equal(t, customers, Search(customers, ""))
	assert.Equal(t, customers, Search(customers, "   "))
}

func TestSearch_MatchesNameCaseInsensitively(t *testing.T) {
	result := Search(fixture(), "GRACE")

	assert.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestSearch_MatchesEmailSubstring(t *testing.T) {
	result := Search(fixture(), "bletchley")

	assert.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)
}

func TestSearch_DoesNotMatchPhoneOrAddress(t *testing.T) {
	customers := []crm.Customer{
		{ID: "1", FullName: "Ada Lovelace", Email: "ada@analytical.dev", PhoneNumber: "555-0101", Address: "12 Byron Row"},
	}

	assert.Empty(t, Search(customers, "555-0101"))
	assert.Empty(t, Search(customers, "Byron"))
}

// Filtering an already filtered result with the same term is a no-op, so
// re-rendering cannot shrink the visible set.
func TestSearch_Idempotent(t *testing.T) {
	once := Search(fixture(), "a")
	twice := Search(once, "a")

	assert.Equal(t, once, twice)
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	customers := fixture()
	snapshot := fixture()

	Search(customers, "ada")
	assert.Equal(t, snapshot, customers)
}

func TestSort_ByNameAscending(t *testing.T) {
	result := Sort(fixture(), crm.SortOption{By: crm.SortByName, Order: crm.OrderAsc})
	assert.Equal(t, []string{"2", "4", "3", "1"}, ids(result))
}

func TestSort_ByNameDescending(t *testing.T) {
	result := Sort(fixture(), crm.SortOption{By: crm.SortByName, Order: crm.OrderDesc})
	assert.Equal(t, []string{"1", "3", "4", "2"}, ids(result))
}

func TestSort_ByDate(t *testing.T) {
	asc := Sort(fixture(), crm.SortOption{By: crm.SortByDate, Order: crm.OrderAsc})
	assert.Equal(t, []string{"4", "3", "2", "1"}, ids(asc))

	desc := Sort(fixture(), crm.SortOption{By: crm.SortByDate, Order: crm.OrderDesc})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(desc))
}

// Records with equal keys keep their relative order, so repeated re-sorts
// render identically.
func TestSort_StableOnEqualKeys(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	customers := []crm.Customer{
		{ID: "a", FullName: "Same Name", CreatedDate: when},
		{ID: "b", FullName: "Same Name", CreatedDate: when},
		{ID: "c", FullName: "Same Name", CreatedDate: when},
	}

	opt := crm.SortOption{By: crm.SortByName, Order: crm.OrderAsc}
	once := Sort(customers, opt)
	twice := Sort(once, opt)

	assert.Equal(t, []string{"a", "b", "c"}, ids(once))
	assert.Equal(t, ids(once), ids(twice))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	customers := fixture()
	snapshot := fixture()

	Sort(customers, crm.SortOption{By: crm.SortByName, Order: crm.OrderAsc})
	assert.Equal(t, snapshot, customers)
}

func TestPaginate_SplitsIntoPages(t *testing.T) {
	customers := fixture()

	first := Paginate(customers, 1, 3)
	assert.Equal(t, []string{"1", "2", "3"}, ids(first.Data))
	assert.Equal(t, 4, first.Total)
	assert.Equal(t, 2, first.Pages)

	second := Paginate(customers, 2, 3)
	assert.Equal(t, []string{"4"}, ids(second.Data))
}

func TestPaginate_PagePastEndIsEmpty(t *testing.T) {
	result := Paginate(fixture(), 5, 3)

	assert.Empty(t, result.Data)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Pages)
}

func TestPaginate_EmptyCollection(t *testing.T) {
	result := Paginate(nil, 1, 10)

	assert.Empty(t, result.Data)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.Pages)
}

// Concatenating all pages in order reconstructs the input exactly.
func TestPaginate_PagesReconstructInput(t *testing.T) {
	customers := fixture()
	result := Paginate(customers, 1, 3)

	var rebuilt []crm.Customer
	for page := 1; page <= result.Pages; page++ {
		rebuilt = append(rebuilt, Paginate(customers, page, 3).Data...)
	}
	assert.Equal(t, customers, rebuilt)
}
