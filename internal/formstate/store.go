package formstate

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"listing-studio/internal/models"
	"listing-studio/internal/sanitize"
	"listing-studio/internal/validation"
)

// Auction duration bounds in days. Hydrating an existing auction recomputes
// the token from the remaining time window, clamped into these bounds.
const (
	MinAuctionDays = 1
	MaxAuctionDays = 7
)

// DefaultAuctionDuration is the token preselected for new auctions.
const DefaultAuctionDuration = "3"

// Partial is a partial form update; nil fields are left untouched.
type Partial struct {
	Title           *string
	Description     *string
	Price           *string
	ImageURLs       *[]string
	IsPremium       *bool
	Tags            *string
	HoursWorn       *string
	IsAuction       *bool
	StartingPrice   *string
	ReservePrice    *string
	AuctionDuration *string
}

// Store owns the single mutable form-state object for one composer session.
// All mutations pass through Update (or the dedicated helpers below), which
// also clears stale validation errors; readers get immutable snapshots.
type Store struct {
	mu      sync.Mutex
	form    models.FormState
	checks  validation.Result
	touched bool
	editing models.EditingState
	draftID string
}

// NewStore creates a store holding the initial empty form.
func NewStore() *Store {
	return &Store{form: emptyForm()}
}

func emptyForm() models.FormState {
	return models.FormState{AuctionDuration: DefaultAuctionDuration}
}

// Update merges a partial state and clears all current validation error
// state, so one edit never shows stale errors for unrelated fields.
func (s *Store) Update(p Partial) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Title != nil {
		s.form.Title = *p.Title
	}
	if p.Description != nil {
		s.form.Description = *p.Description
	}
	if p.Price != nil {
		s.form.Price = *p.Price
	}
	if p.ImageURLs != nil {
		s.form.ImageURLs = append([]string(nil), (*p.ImageURLs)...)
	}
	if p.IsPremium != nil {
		s.form.IsPremium = *p.IsPremium
	}
	if p.Tags != nil {
		s.form.Tags = *p.Tags
	}
	if p.HoursWorn != nil {
		s.form.HoursWorn = *p.HoursWorn
	}
	if p.IsAuction != nil {
		s.form.IsAuction = *p.IsAuction
	}
	if p.StartingPrice != nil {
		s.form.StartingPrice = *p.StartingPrice
	}
	if p.ReservePrice != nil {
		s.form.ReservePrice = *p.ReservePrice
	}
	if p.AuctionDuration != nil {
		s.form.AuctionDuration = *p.AuctionDuration
	}

	s.checks = validation.Result{}
	s.touched = false
}

// AppendImageURLs commits uploaded URLs to the end of the display order.
func (s *Store) AppendImageURLs(urls []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.ImageURLs = append(s.form.ImageURLs, urls...)
	s.checks = validation.Result{}
	s.touched = false
}

// Snapshot returns a copy of the current form.
func (s *Store) Snapshot() models.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyForm(s.form)
}

// SetValidation records a validation pass. touched marks failing fields as
// user-visible (set by the authoritative submit pass).
func (s *Store) SetValidation(r validation.Result, touched bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = r
	s.touched = touched
}

// Validation returns the last recorded validation result and whether its
// failing fields have been marked touched.
func (s *Store) Validation() (validation.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checks, s.touched
}

// Editing returns the current edit/creation mode.
func (s *Store) Editing() models.EditingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

// LinkDraft associates the session with a persisted draft id.
func (s *Store) LinkDraft(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftID = id
}

// DraftID returns the linked draft id, or empty.
func (s *Store) DraftID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftID
}

// LoadForm replaces the whole form (already sanitized by the caller) and
// links the draft it came from, without entering edit mode.
func (s *Store) LoadForm(form models.FormState, draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = copyForm(form)
	if s.form.AuctionDuration == "" {
		s.form.AuctionDuration = DefaultAuctionDuration
	}
	s.checks = validation.Result{}
	s.touched = false
	s.editing = models.EditingState{}
	s.draftID = draftID
}

// Reset restores the initial empty form and clears editing/draft linkage.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = emptyForm()
	s.checks = validation.Result{}
	s.touched = false
	s.editing = models.EditingState{}
	s.draftID = ""
}

// HydrateFromListing maps a persisted listing back into form state for
// editing. Every text field is re-sanitized, absent optionals default, and
// the auction duration is recomputed from the remaining time window rather
// than whatever was chosen at creation.
func (s *Store) HydrateFromListing(l models.Listing, now time.Time) {
	form := models.FormState{
		Title:           sanitize.Text(l.Title),
		Description:     sanitize.Text(l.Description),
		ImageURLs:       append([]string(nil), l.ImageURLs...),
		IsPremium:       l.IsPremium,
		Tags:            strings.Join(sanitize.Tags(strings.Join(l.Tags, ",")), ","),
		AuctionDuration: DefaultAuctionDuration,
	}
	if l.HoursWorn != nil {
		form.HoursWorn = strconv.Itoa(*l.HoursWorn)
	}
	if l.Auction != nil {
		form.IsAuction = true
		form.StartingPrice = l.Auction.StartingPrice.String()
		if l.Auction.ReservePrice != nil {
			form.ReservePrice = l.Auction.ReservePrice.String()
		}
		form.AuctionDuration = durationFromRemaining(l.Auction.EndTime.Sub(now))
	} else {
		form.Price = l.Price.String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
	s.checks = validation.Result{}
	s.touched = false
	s.editing = models.EditingState{ListingID: l.ListingID, IsEditing: true}
	s.draftID = ""
}

// durationFromRemaining converts a remaining window into a whole-day token
// clamped to [MinAuctionDays, MaxAuctionDays].
func durationFromRemaining(remaining time.Duration) string {
	days := int(math.Ceil(remaining.Hours() / 24))
	if days < MinAuctionDays {
		days = MinAuctionDays
	}
	if days > MaxAuctionDays {
		days = MaxAuctionDays
	}
	return strconv.Itoa(days)
}

func copyForm(f models.FormState) models.FormState {
	f.ImageURLs = append([]string(nil), f.ImageURLs...)
	return f
}
