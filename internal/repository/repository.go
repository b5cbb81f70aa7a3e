package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"listing-studio/internal/listingerrors"
	model "listing-studio/internal/models"
	"listing-studio/utils"
)

// ListingDB defines the listing storage interface for the marketplace.
type ListingDB interface {
	CreateListing(l model.Listing) (model.Listing, error)
	CreateAuctionListing(l model.Listing, settings model.AuctionSettings) (model.Listing, error)
	UpdateListing(id string, l model.Listing) (model.Listing, error)
	RemoveListing(id string) error
	CancelAuction(id string) error
	GetListing(id string) (model.Listing, error)
	CountBySeller(seller string) (int, error)
	GetListingViews(id string) (int, error)
}

// DraftDB defines the draft storage interface.
type DraftDB interface {
	SaveDraft(d model.Draft) error
	GetDraftsBySeller(seller string) ([]model.Draft, error)
	DeleteDraft(id string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of ListingDB
// and DraftDB.
type MemoryRepo struct {
	mu       sync.RWMutex
	listings map[string]model.Listing // key: listingID
	drafts   map[string]model.Draft   // key: draftID
	views    map[string]int           // key: listingID -> view count
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings: make(map[string]model.Listing),
		drafts:   make(map[string]model.Draft),
		views:    make(map[string]int),
	}
}

// CreateListing stores a new standard listing.
func (r *MemoryRepo) CreateListing(l model.Listing) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ListingID == "" {
		l.ListingID = utils.GenerateID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	l.Auction = nil
	r.listings[l.ListingID] = copyListing(l)
	return copyListing(l), nil
}

// CreateAuctionListing stores a new auction listing with its settings.
func (r *MemoryRepo) CreateAuctionListing(l model.Listing, settings model.AuctionSettings) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ListingID == "" {
		l.ListingID = utils.GenerateID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	s := settings
	l.Auction = &s
	r.listings[l.ListingID] = copyListing(l)
	return copyListing(l), nil
}

// UpdateListing replaces the stored data for an existing listing, keeping
// its id and creation time.
func (r *MemoryRepo) UpdateListing(id string, l model.Listing) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("update listing %s: %w", id, listingerrors.ErrListingNotFound)
	}
	l.ListingID = existing.ListingID
	l.CreatedAt = existing.CreatedAt
	r.listings[id] = copyListing(l)
	return copyListing(l), nil
}

// RemoveListing deletes a listing.
func (r *MemoryRepo) RemoveListing(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[id]; !ok {
		return fmt.Errorf("remove listing %s: %w", id, listingerrors.ErrListingNotFound)
	}
	delete(r.listings, id)
	delete(r.views, id)
	return nil
}

// CancelAuction removes an auction listing. Standard listings cannot be
// cancelled this way.
func (r *MemoryRepo) CancelAuction(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("cancel auction %s: %w", id, listingerrors.ErrListingNotFound)
	}
	if l.Auction == nil {
		return fmt.Errorf("cancel auction %s: %w", id, listingerrors.ErrNotAuction)
	}
	delete(r.listings, id)
	delete(r.views, id)
	return nil
}

// GetListing returns one listing by id.
func (r *MemoryRepo) GetListing(id string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, listingerrors.ErrListingNotFound)
	}
	return copyListing(l), nil
}

// CountBySeller returns how many listings a seller currently has.
func (r *MemoryRepo) CountBySeller(seller string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, l := range r.listings {
		if l.Seller == seller {
			count++
		}
	}
	return count, nil
}

// GetListingViews returns the view count for a listing.
func (r *MemoryRepo) GetListingViews(id string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.listings[id]; !ok {
		return 0, fmt.Errorf("get views for listing %s: %w", id, listingerrors.ErrListingNotFound)
	}
	return r.views[id], nil
}

// SaveDraft creates or overwrites a draft, preserving the original creation
// time on overwrite.
func (r *MemoryRepo) SaveDraft(d model.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.drafts[d.DraftID]; ok {
		d.CreatedAt = existing.CreatedAt
	}
	r.drafts[d.DraftID] = copyDraft(d)
	return nil
}

// GetDraftsBySeller returns a seller's drafts, most recently modified first.
func (r *MemoryRepo) GetDraftsBySeller(seller string) ([]model.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var drafts []model.Draft
	for _, d := range r.drafts {
		if d.Seller == seller {
			drafts = append(drafts, copyDraft(d))
		}
	}
	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].LastModified.After(drafts[j].LastModified)
	})
	return drafts, nil
}

// DeleteDraft removes a draft. Deleting an absent draft is not an error.
func (r *MemoryRepo) DeleteDraft(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}

// AddViews seeds the view counter for a listing. This method is intended
// for tests only.
func (r *MemoryRepo) AddViews(id string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[id] += count
}

func copyListing(l model.Listing) model.Listing {
	l.ImageURLs = append([]string(nil), l.ImageURLs...)
	l.Tags = append([]string(nil), l.Tags...)
	if l.HoursWorn != nil {
		h := *l.HoursWorn
		l.HoursWorn = &h
	}
	if l.Auction != nil {
		a := *l.Auction
		if a.ReservePrice != nil {
			rp := *a.ReservePrice
			a.ReservePrice = &rp
		}
		l.Auction = &a
	}
	return l
}

func copyDraft(d model.Draft) model.Draft {
	d.Form.ImageURLs = append([]string(nil), d.Form.ImageURLs...)
	return d
}
