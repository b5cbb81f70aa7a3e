package listing

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"listing-studio/internal/drafts"
	"listing-studio/internal/formstate"
	"listing-studio/internal/listingerrors"
	model "listing-studio/internal/models"
	"listing-studio/internal/quota"
	"listing-studio/internal/repository"
	"listing-studio/internal/sanitize"
	"listing-studio/internal/validation"
)

// ListingService defines the business logic for creating, editing and
// removing listings. It runs the authoritative pass: every write re-runs
// sanitization, validation and quota checks regardless of what any client
// already verified.
type ListingService struct {
	db     repository.ListingDB
	drafts *drafts.Bridge
}

// NewListingService creates a new ListingService instance.
func NewListingService(db repository.ListingDB, draftDB repository.DraftDB) *ListingService {
	return &ListingService{
		db:     db,
		drafts: drafts.NewBridge(draftDB),
	}
}

// CreateListing validates and stores a standard fixed-price listing.
func (s *ListingService) CreateListing(seller model.SellerIdentity, form model.FormState) (model.Listing, error) {
	form.IsAuction = false
	form = sanitize.Form(form)

	if res := validation.Evaluate(form, 0); !res.IsValid {
		return model.Listing{}, fmt.Errorf("service: %w - %s", listingerrors.ErrInvalidForm, res.FirstMessage())
	}
	if err := s.checkQuota(seller); err != nil {
		return model.Listing{}, err
	}

	l, err := s.db.CreateListing(buildListing(seller.Username, form))
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to create listing for %s: %w", seller.Username, err)
	}
	return l, nil
}

// CreateAuction validates and stores an auction listing. The end time is
// computed from the duration token at the moment of publish, never from any
// earlier draft-save timestamp. Fails closed for unverified sellers.
func (s *ListingService) CreateAuction(seller model.SellerIdentity, form model.FormState) (model.Listing, error) {
	if !quota.CanRunAuction(seller.IsVerified) {
		return model.Listing{}, fmt.Errorf("service: %w - seller %s", listingerrors.ErrAuctionNotAllowed, seller.Username)
	}

	form.IsAuction = true
	form = sanitize.Form(form)

	if res := validation.Evaluate(form, 0); !res.IsValid {
		return model.Listing{}, fmt.Errorf("service: %w - %s", listingerrors.ErrInvalidForm, res.FirstMessage())
	}
	if err := s.checkQuota(seller); err != nil {
		return model.Listing{}, err
	}

	l, err := s.db.CreateAuctionListing(buildListing(seller.Username, form), AuctionSettingsFromForm(form, time.Now().UTC()))
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to create auction for %s: %w", seller.Username, err)
	}
	return l, nil
}

// UpdateListing validates and replaces an existing listing's data. When the
// form is in auction mode the settings are rebuilt, with the end time
// recomputed from the duration token at update time.
func (s *ListingService) UpdateListing(id string, seller model.SellerIdentity, form model.FormState) (model.Listing, error) {
	if form.IsAuction && !quota.CanRunAuction(seller.IsVerified) {
		return model.Listing{}, fmt.Errorf("service: %w - seller %s", listingerrors.ErrAuctionNotAllowed, seller.Username)
	}

	form = sanitize.Form(form)
	if res := validation.Evaluate(form, 0); !res.IsValid {
		return model.Listing{}, fmt.Errorf("service: %w - %s", listingerrors.ErrInvalidForm, res.FirstMessage())
	}

	l := buildListing(seller.Username, form)
	if form.IsAuction {
		settings := AuctionSettingsFromForm(form, time.Now().UTC())
		l.Auction = &settings
	}

	updated, err := s.db.UpdateListing(id, l)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to update listing %s: %w", id, err)
	}
	return updated, nil
}

// RemoveListing deletes a listing.
func (s *ListingService) RemoveListing(id string) error {
	if id == "" {
		return fmt.Errorf("service: %w - empty listing ID", listingerrors.ErrListingNotFound)
	}
	if err := s.db.RemoveListing(id); err != nil {
		return fmt.Errorf("service: failed to remove listing %s: %w", id, err)
	}
	return nil
}

// CancelAuction cancels an auction listing.
func (s *ListingService) CancelAuction(id string) error {
	if id == "" {
		return fmt.Errorf("service: %w - empty listing ID", listingerrors.ErrListingNotFound)
	}
	if err := s.db.CancelAuction(id); err != nil {
		return fmt.Errorf("service: failed to cancel auction %s: %w", id, err)
	}
	return nil
}

// GetListing returns one listing by id.
func (s *ListingService) GetListing(id string) (model.Listing, error) {
	l, err := s.db.GetListing(id)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", id, err)
	}
	return l, nil
}

// CountBySeller returns how many listings a seller currently has.
func (s *ListingService) CountBySeller(seller string) (int, error) {
	count, err := s.db.CountBySeller(seller)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count listings for %s: %w", seller, err)
	}
	return count, nil
}

// GetListingViews returns the view count for a listing.
func (s *ListingService) GetListingViews(id string) (int, error) {
	count, err := s.db.GetListingViews(id)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get views for %s: %w", id, err)
	}
	return count, nil
}

// SaveDraft persists a sanitized draft of the form for later resumption.
func (s *ListingService) SaveDraft(seller model.SellerIdentity, draftID, name string, form model.FormState) (model.Draft, error) {
	return s.drafts.Save(seller.Username, draftID, name, form)
}

// GetDrafts returns a seller's drafts.
func (s *ListingService) GetDrafts(seller string) ([]model.Draft, error) {
	return s.drafts.List(seller)
}

// DeleteDraft removes a draft. Idempotent.
func (s *ListingService) DeleteDraft(id string) error {
	return s.drafts.Delete(id)
}

func (s *ListingService) checkQuota(seller model.SellerIdentity) error {
	count, err := s.db.CountBySeller(seller.Username)
	if err != nil {
		return fmt.Errorf("service: failed to count listings for %s: %w", seller.Username, err)
	}
	if !quota.CanCreate(seller.IsVerified, count) {
		return fmt.Errorf("service: %w - %d of %d listings used", listingerrors.ErrQuotaExceeded, count, quota.Limit(seller.IsVerified))
	}
	return nil
}

// buildListing converts a validated, sanitized form into the persisted
// listing shape. Price fields that failed to parse have already been
// rejected by validation.
func buildListing(seller string, form model.FormState) model.Listing {
	l := model.Listing{
		Seller:      seller,
		Title:       form.Title,
		Description: form.Description,
		ImageURLs:   append([]string(nil), form.ImageURLs...),
		IsPremium:   form.IsPremium,
		Tags:        sanitize.Tags(form.Tags),
	}
	if !form.IsAuction {
		if p, err := decimal.NewFromString(form.Price); err == nil {
			l.Price = p
		}
	}
	if h, err := strconv.Atoi(form.HoursWorn); err == nil && h >= 0 {
		l.HoursWorn = &h
	}
	return l
}

// AuctionSettingsFromForm derives auction settings from a validated auction
// form, anchoring the end time at now.
func AuctionSettingsFromForm(form model.FormState, now time.Time) model.AuctionSettings {
	settings := model.AuctionSettings{}
	if sp, err := decimal.NewFromString(form.StartingPrice); err == nil {
		settings.StartingPrice = sp
	}
	if form.ReservePrice != "" {
		if rp, err := decimal.NewFromString(form.ReservePrice); err == nil {
			settings.ReservePrice = &rp
		}
	}
	days := sanitize.BoundedNumber(form.AuctionDuration,
		decimal.NewFromInt(formstate.MinAuctionDays),
		decimal.NewFromInt(formstate.MaxAuctionDays),
		decimal.NewFromInt(formstate.MinAuctionDays)).IntPart()
	settings.EndTime = now.Add(time.Duration(days) * 24 * time.Hour)
	return settings
}
