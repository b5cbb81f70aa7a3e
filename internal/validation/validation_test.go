package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"listing-studio/internal/models"
)

func validStandardForm() models.FormState {
	return models.FormState{
		Title:       "Vintage silk scarf",
		Description: "Barely worn vintage silk scarf in excellent condition.",
		Price:       "19.99",
		ImageURLs:   []string{"https://img.example/1.jpg"},
		Tags:        "vintage,silk",
	}
}

func validAuctionForm() models.FormState {
	f := validStandardForm()
	f.IsAuction = true
	f.Price = ""
	f.StartingPrice = "10.00"
	f.AuctionDuration = "3"
	return f
}

// Tests Evaluate for fixed-price listings
func TestEvaluate_Standard(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*models.FormState)
		pendingFiles int
		wantValid    bool
		wantMessage  string
	}{
		{
			name:      "complete_form_is_valid",
			mutate:    func(f *models.FormState) {},
			wantValid: true,
		},
		{
			name:        "title_too_short",
			mutate:      func(f *models.FormState) { f.Title = "Hat" },
			wantValid:   false,
			wantMessage: "Title must be between 5 and 100 characters",
		},
		{
			name:      "title_too_long",
			mutate:    func(f *models.FormState) { f.Title = strings.Repeat("a", TitleMax+1) },
			wantValid: false,
		},
		{
			name:        "description_too_short",
			mutate:      func(f *models.FormState) { f.Description = "too short" },
			wantValid:   false,
			wantMessage: "Description must be between 20 and 2000 characters",
		},
		{
			name:      "price_below_minimum",
			mutate:    func(f *models.FormState) { f.Price = "0" },
			wantValid: false,
		},
		{
			name:      "price_above_maximum",
			mutate:    func(f *models.FormState) { f.Price = "10000.01" },
			wantValid: false,
		},
		{
			name:      "price_unparsable",
			mutate:    func(f *models.FormState) { f.Price = "free" },
			wantValid: false,
		},
		{
			name:        "no_images",
			mutate:      func(f *models.FormState) { f.ImageURLs = nil },
			wantValid:   false,
			wantMessage: "Add at least one photo",
		},
		{
			name:         "pending_files_count_as_images",
			mutate:       func(f *models.FormState) { f.ImageURLs = nil },
			pendingFiles: 2,
			wantValid:    true,
		},
		{
			name:      "tags_too_long",
			mutate:    func(f *models.FormState) { f.Tags = strings.Repeat("x", TagsMax+1) },
			wantValid: false,
		},
		{
			name: "auction_fields_ignored_for_fixed_price",
			mutate: func(f *models.FormState) {
				f.StartingPrice = "garbage"
				f.ReservePrice = "garbage"
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validStandardForm()
			tt.mutate(&form)

			res := Evaluate(form, tt.pendingFiles)

			require.Equal(t, tt.wantValid, res.IsValid)
			if tt.wantMessage != "" {
				require.Equal(t, tt.wantMessage, res.FirstMessage())
			}
			if tt.wantValid {
				require.Empty(t, res.FirstMessage())
			}
		})
	}
}

// Tests Evaluate for auction listings
func TestEvaluate_Auction(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.FormState)
		wantValid bool
	}{
		{
			name:      "complete_auction_is_valid",
			mutate:    func(f *models.FormState) {},
			wantValid: true,
		},
		{
			name:      "fixed_price_ignored_for_auctions",
			mutate:    func(f *models.FormState) { f.Price = "garbage" },
			wantValid: true,
		},
		{
			name:      "starting_price_required",
			mutate:    func(f *models.FormState) { f.StartingPrice = "" },
			wantValid: false,
		},
		{
			name:      "starting_price_below_minimum",
			mutate:    func(f *models.FormState) { f.StartingPrice = "0.001" },
			wantValid: false,
		},
		{
			name:      "reserve_absent_is_valid",
			mutate:    func(f *models.FormState) { f.ReservePrice = "" },
			wantValid: true,
		},
		{
			name: "reserve_below_starting",
			mutate: func(f *models.FormState) {
				f.StartingPrice = "10.00"
				f.ReservePrice = "5.00"
			},
			wantValid: false,
		},
		{
			name: "reserve_equal_to_starting",
			mutate: func(f *models.FormState) {
				f.StartingPrice = "10.00"
				f.ReservePrice = "10.00"
			},
			wantValid: true,
		},
		{
			name: "reserve_above_starting",
			mutate: func(f *models.FormState) {
				f.StartingPrice = "10.00"
				f.ReservePrice = "25.00"
			},
			wantValid: true,
		},
		{
			name:      "reserve_unparsable",
			mutate:    func(f *models.FormState) { f.ReservePrice = "maybe" },
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validAuctionForm()
			tt.mutate(&form)

			res := Evaluate(form, 0)
			require.Equal(t, tt.wantValid, res.IsValid)
		})
	}
}

// Tests that rune count, not byte count, drives length limits
func TestEvaluate_MultibyteTitle(t *testing.T) {
	form := validStandardForm()
	form.Title = "šàl z hedvábí" // 13 runes, more bytes

	res := Evaluate(form, 0)
	require.True(t, res.Title.IsValid)
	require.Equal(t, 13, res.Title.Count)
}

// Tags share the same rune-based counting as the other text fields.
func TestEvaluate_MultibyteTags(t *testing.T) {
	form := validStandardForm()

	form.Tags = strings.Repeat("é", TagsMax) // at the limit in runes, over it in bytes
	res := Evaluate(form, 0)
	require.True(t, res.Tags.IsValid)
	require.Equal(t, TagsMax, res.Tags.Count)

	form.Tags = strings.Repeat("é", TagsMax+1)
	res = Evaluate(form, 0)
	require.False(t, res.Tags.IsValid)
}
