package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerIdentity is the read-only identity supplied by the session layer.
type SellerIdentity struct {
	Username   string `json:"username"`
	IsVerified bool   `json:"is_verified"`
}

// FormState holds everything a seller has typed or selected for one listing.
// Price is authoritative for standard listings, StartingPrice/ReservePrice
// for auctions; IsAuction selects which side applies.
type FormState struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           string   `json:"price"`
	ImageURLs       []string `json:"image_urls"` // display order, first = cover
	IsPremium       bool     `json:"is_premium"`
	Tags            string   `json:"tags"`       // comma-joined
	HoursWorn       string   `json:"hours_worn"` // numeric string or empty
	IsAuction       bool     `json:"is_auction"`
	StartingPrice   string   `json:"starting_price"`
	ReservePrice    string   `json:"reserve_price"`
	AuctionDuration string   `json:"auction_duration"` // days token "1".."7"
}

// AuctionSettings is embedded in auction listings at publish time.
type AuctionSettings struct {
	StartingPrice decimal.Decimal  `json:"starting_price"`
	ReservePrice  *decimal.Decimal `json:"reserve_price,omitempty"` // when set, >= StartingPrice
	EndTime       time.Time        `json:"end_time"`
}

// Listing is the persisted marketplace entity.
type Listing struct {
	ListingID   string           `json:"listing_id"`
	Seller      string           `json:"seller"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	ImageURLs   []string         `json:"image_urls"`
	IsPremium   bool             `json:"is_premium"`
	Tags        []string         `json:"tags"`
	HoursWorn   *int             `json:"hours_worn,omitempty"`
	Auction     *AuctionSettings `json:"auction,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// IsAuction reports whether the listing carries auction settings.
func (l Listing) IsAuction() bool {
	return l.Auction != nil
}

// Draft is a persisted, resumable snapshot of an unpublished form.
type Draft struct {
	DraftID      string    `json:"draft_id"`
	Seller       string    `json:"seller"`
	Name         string    `json:"name"`
	Form         FormState `json:"form"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// EditingState tracks whether the composer is editing an existing listing.
type EditingState struct {
	ListingID string `json:"listing_id"`
	IsEditing bool   `json:"is_editing"`
}

// RawFile is an in-memory file awaiting upload.
type RawFile struct {
	Name string `json:"name"`
	Data []byte `json:"-"`
}

// RejectedFile explains why a selected file was not accepted.
type RejectedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Selection is the outcome of a file-selection pass.
type Selection struct {
	Accepted []RawFile      `json:"accepted"`
	Rejected []RejectedFile `json:"rejected"`
}

// UploadResult carries the resolvable URL of one uploaded file.
type UploadResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
