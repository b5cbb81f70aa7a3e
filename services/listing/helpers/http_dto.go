package helpers

import (
	model "listing-studio/internal/models"
)

// Request/Response DTOs

// FormPayload mirrors the composer form; it rides inside create, update and
// draft requests.
type FormPayload struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           string   `json:"price"`
	ImageURLs       []string `json:"image_urls"`
	IsPremium       bool     `json:"is_premium"`
	Tags            string   `json:"tags"`
	HoursWorn       string   `json:"hours_worn"`
	IsAuction       bool     `json:"is_auction"`
	StartingPrice   string   `json:"starting_price"`
	ReservePrice    string   `json:"reserve_price"`
	AuctionDuration string   `json:"auction_duration"`
}

type CreateListingRequest struct {
	Seller   string      `json:"seller" binding:"required"`
	Verified bool        `json:"verified"`
	Form     FormPayload `json:"form" binding:"required"`
}

type UpdateListingRequest struct {
	Seller    string      `json:"seller" binding:"required"`
	Verified  bool        `json:"verified"`
	IsAuction bool        `json:"is_auction"`
	Form      FormPayload `json:"form" binding:"required"`
}

type SaveDraftRequest struct {
	Seller  string      `json:"seller" binding:"required"`
	DraftID string      `json:"draft_id"`
	Name    string      `json:"name"`
	Form    FormPayload `json:"form" binding:"required"`
}

type ListingResponse struct {
	ListingID   string   `json:"listing_id"`
	Seller      string   `json:"seller"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	ImageURLs   []string `json:"image_urls"`
	IsPremium   bool     `json:"is_premium"`
	Tags        []string `json:"tags"`
	HoursWorn   *int     `json:"hours_worn,omitempty"`
	IsAuction   bool     `json:"is_auction"`
	Starting    string   `json:"starting_price,omitempty"`
	Reserve     string   `json:"reserve_price,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

type DraftResponse struct {
	DraftID      string      `json:"draft_id"`
	Seller       string      `json:"seller"`
	Name         string      `json:"name"`
	Form         FormPayload `json:"form"`
	CreatedAt    string      `json:"created_at"`
	LastModified string      `json:"last_modified"`
}

type ViewsResponse struct {
	ListingID string `json:"listing_id"`
	Views     int    `json:"views"`
}

type UploadResponse struct {
	URLs     []string             `json:"urls"`
	Rejected []model.RejectedFile `json:"rejected,omitempty"`
}
