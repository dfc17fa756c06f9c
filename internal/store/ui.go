package store

import (
	"time"

	"crmdesk/internal/crm"
)

// now is stubbed in tests that assert on deletion timestamps.
var now = time.Now

// SetSearchTerm updates the filter term and resets pagination to the first
// page.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	s.searchTerm = term
	s.currentPage = 1
	s.mu.Unlock()
}

// SearchTerm returns the current filter term.
func (s *Store) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchTerm
}

// SetSortOption updates the sort key and direction.
func (s *Store) SetSortOption(opt crm.SortOption) {
	s.mu.Lock()
	s.sortOption = opt
	s.mu.Unlock()
}

// SortOption returns the current sort key and direction.
func (s *Store) SortOption() crm.SortOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortOption
}

// SetPage moves to the given 1-based page. Values below 1 are clamped to 1;
// clamping against the last page is the presentation layer's concern.
func (s *Store) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.currentPage = page
	s.mu.Unlock()
}

// Page returns the current 1-based page number.
func (s *Store) Page() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// SetPageSize updates the page size and resets to the first page.
func (s *Store) SetPageSize(size int) {
	if size < 1 {
		return
	}
	s.mu.Lock()
	s.pageSize = size
	s.currentPage = 1
	s.mu.Unlock()
}

// PageSize returns the current page size.
func (s *Store) PageSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageSize
}

// SetDarkMode sets the theme preference and persists it.
func (s *Store) SetDarkMode(dark bool) {
	s.mu.Lock()
	s.darkMode = dark
	s.mu.Unlock()

	theme := crm.ThemeLight
	if dark {
		theme = crm.ThemeDark
	}
	if err := s.themes.Save(theme); err != nil {
		s.logger.Warn("failed to persist theme preference", "error", err)
	}
}

// ToggleDarkMode flips the theme preference and persists it.
func (s *Store) ToggleDarkMode() {
	s.SetDarkMode(!s.DarkMode())
}

// DarkMode reports the current theme preference.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// SetSelected records the currently viewed record; empty clears it.
func (s *Store) SetSelected(id string) {
	s.mu.Lock()
	s.selectedID = id
	s.mu.Unlock()
}

// Selected returns the currently viewed record identifier.
func (s *Store) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// SetFormOpen records whether the customer form is open.
func (s *Store) SetFormOpen(open bool) {
	s.mu.Lock()
	s.formOpen = open
	s.mu.Unlock()
}

// FormOpen reports whether the customer form is open.
func (s *Store) FormOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formOpen
}

// SetEditing records the record currently being edited; empty clears it.
func (s *Store) SetEditing(id string) {
	s.mu.Lock()
	s.editingID = id
	s.mu.Unlock()
}

// Editing returns the identifier of the record being edited.
func (s *Store) Editing() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID
}
