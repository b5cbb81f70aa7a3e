package formstate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"listing-studio/internal/models"
	"listing-studio/internal/validation"
)

func str(s string) *string { return &s }

// Tests NewStore
func TestNewStore(t *testing.T) {
	s := NewStore()

	form := s.Snapshot()
	require.Empty(t, form.Title)
	require.Equal(t, DefaultAuctionDuration, form.AuctionDuration)
	require.False(t, s.Editing().IsEditing)
	require.Empty(t, s.DraftID())
}

// Tests Update
func TestStore_Update(t *testing.T) {
	s := NewStore()

	s.Update(Partial{Title: str("Vintage silk scarf"), Price: str("19.99")})
	form := s.Snapshot()
	require.Equal(t, "Vintage silk scarf", form.Title)
	require.Equal(t, "19.99", form.Price)

	// untouched fields survive a later partial update
	s.Update(Partial{Description: str("Barely worn, excellent condition overall.")})
	form = s.Snapshot()
	require.Equal(t, "Vintage silk scarf", form.Title)
	require.Equal(t, "Barely worn, excellent condition overall.", form.Description)
}

// Any edit clears recorded validation errors so stale messages never linger.
func TestStore_UpdateClearsValidation(t *testing.T) {
	s := NewStore()
	s.SetValidation(validation.Result{Title: validation.Field{Message: "Title must be between 5 and 100 characters"}}, true)

	res, touched := s.Validation()
	require.True(t, touched)
	require.Equal(t, "Title must be between 5 and 100 characters", res.Title.Message)

	s.Update(Partial{Title: str("Vintage silk scarf")})

	res, touched = s.Validation()
	require.False(t, touched)
	require.Empty(t, res.Title.Message)
}

// Tests that snapshots are isolated from later mutation
func TestStore_SnapshotIsolation(t *testing.T) {
	s := NewStore()
	urls := []string{"https://img.example/1.jpg"}
	s.Update(Partial{ImageURLs: &urls})

	snap := s.Snapshot()
	snap.ImageURLs[0] = "mutated"
	snap.Title = "mutated"

	form := s.Snapshot()
	require.Equal(t, "https://img.example/1.jpg", form.ImageURLs[0])
	require.Empty(t, form.Title)
}

// Tests AppendImageURLs
func TestStore_AppendImageURLs(t *testing.T) {
	s := NewStore()
	urls := []string{"a.jpg"}
	s.Update(Partial{ImageURLs: &urls})

	s.AppendImageURLs([]string{"b.jpg", "c.jpg"})
	require.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, s.Snapshot().ImageURLs)
}

// Tests LoadForm
func TestStore_LoadForm(t *testing.T) {
	s := NewStore()

	s.LoadForm(models.FormState{Title: "Draft title here", Price: "5.00"}, "draft-1")
	require.Equal(t, "Draft title here", s.Snapshot().Title)
	require.Equal(t, "draft-1", s.DraftID())
	require.False(t, s.Editing().IsEditing)
	// missing duration token falls back to the default
	require.Equal(t, DefaultAuctionDuration, s.Snapshot().AuctionDuration)
}

// Tests Reset
func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.Update(Partial{Title: str("Something in progress")})
	s.LinkDraft("draft-1")
	s.SetValidation(validation.Result{IsValid: true}, true)

	s.Reset()

	require.Empty(t, s.Snapshot().Title)
	require.Equal(t, DefaultAuctionDuration, s.Snapshot().AuctionDuration)
	require.Empty(t, s.DraftID())
	_, touched := s.Validation()
	require.False(t, touched)
	require.False(t, s.Editing().IsEditing)
}

// Tests HydrateFromListing
func TestStore_HydrateFromListing(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	hours := 12

	t.Run("standard_listing", func(t *testing.T) {
		s := NewStore()
		s.HydrateFromListing(models.Listing{
			ListingID:   "lst-1",
			Title:       "Vintage <b>silk</b> scarf",
			Description: "Barely worn vintage silk scarf in great shape.",
			Price:       decimal.NewFromFloat(19.99),
			ImageURLs:   []string{"a.jpg"},
			Tags:        []string{"vintage", "silk"},
			HoursWorn:   &hours,
		}, now)

		form := s.Snapshot()
		require.Equal(t, "Vintage silk scarf", form.Title)
		require.Equal(t, "19.99", form.Price)
		require.Equal(t, "vintage,silk", form.Tags)
		require.Equal(t, "12", form.HoursWorn)
		require.False(t, form.IsAuction)

		require.Equal(t, models.EditingState{ListingID: "lst-1", IsEditing: true}, s.Editing())
		require.Empty(t, s.DraftID())
	})

	t.Run("auction_listing", func(t *testing.T) {
		reserve := decimal.NewFromInt(25)
		s := NewStore()
		s.HydrateFromListing(models.Listing{
			ListingID:   "lst-2",
			Title:       "Signed first edition",
			Description: "Signed first edition in protective sleeve.",
			ImageURLs:   []string{"a.jpg"},
			Auction: &models.AuctionSettings{
				StartingPrice: decimal.NewFromInt(10),
				ReservePrice:  &reserve,
				EndTime:       now.Add(72 * time.Hour),
			},
		}, now)

		form := s.Snapshot()
		require.True(t, form.IsAuction)
		require.Equal(t, "10", form.StartingPrice)
		require.Equal(t, "25", form.ReservePrice)
		require.Equal(t, "3", form.AuctionDuration)
	})
}

// The duration token always reflects the remaining window, clamped to the
// selectable range.
func TestDurationFromRemaining(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		expected  string
	}{
		{name: "almost_over", remaining: time.Minute, expected: "1"},
		{name: "already_ended", remaining: -time.Hour, expected: "1"},
		{name: "partial_day_rounds_up", remaining: 26 * time.Hour, expected: "2"},
		{name: "exact_days", remaining: 72 * time.Hour, expected: "3"},
		{name: "clamped_to_max", remaining: 30 * 24 * time.Hour, expected: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, durationFromRemaining(tt.remaining))
		})
	}
}
