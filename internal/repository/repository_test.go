package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"listing-studio/internal/listingerrors"
	model "listing-studio/internal/models"
)

func testListing(seller string) model.Listing {
	return model.Listing{
		Seller:      seller,
		Title:       "Vintage silk scarf",
		Description: "Barely worn vintage silk scarf in excellent condition.",
		Price:       decimal.NewFromFloat(19.99),
		ImageURLs:   []string{"https://img.example/1.jpg"},
		Tags:        []string{"vintage", "silk"},
	}
}

// Tests CreateListing
func TestMemoryRepo_CreateListing(t *testing.T) {
	repo := NewMemoryRepo()

	created, err := repo.CreateListing(testListing("alice"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ListingID)
	require.False(t, created.CreatedAt.IsZero())
	require.Nil(t, created.Auction)

	fetched, err := repo.GetListing(created.ListingID)
	require.NoError(t, err)
	require.Equal(t, created.Title, fetched.Title)
}

// Tests CreateAuctionListing
func TestMemoryRepo_CreateAuctionListing(t *testing.T) {
	repo := NewMemoryRepo()
	settings := model.AuctionSettings{
		StartingPrice: decimal.NewFromInt(10),
		EndTime:       time.Now().UTC().Add(72 * time.Hour),
	}

	created, err := repo.CreateAuctionListing(testListing("alice"), settings)
	require.NoError(t, err)
	require.NotNil(t, created.Auction)
	require.True(t, created.IsAuction())
	require.True(t, settings.StartingPrice.Equal(created.Auction.StartingPrice))
}

// Tests UpdateListing
func TestMemoryRepo_UpdateListing(t *testing.T) {
	repo := NewMemoryRepo()
	created, err := repo.CreateListing(testListing("alice"))
	require.NoError(t, err)

	updated := created
	updated.Title = "Vintage silk scarf, relisted"
	updated.ListingID = "ignored"
	updated.CreatedAt = time.Time{}

	got, err := repo.UpdateListing(created.ListingID, updated)
	require.NoError(t, err)
	// id and creation time are immutable
	require.Equal(t, created.ListingID, got.ListingID)
	require.Equal(t, created.CreatedAt, got.CreatedAt)
	require.Equal(t, "Vintage silk scarf, relisted", got.Title)

	_, err = repo.UpdateListing("missing", updated)
	require.ErrorIs(t, err, listingerrors.ErrListingNotFound)
}

// Tests RemoveListing
func TestMemoryRepo_RemoveListing(t *testing.T) {
	repo := NewMemoryRepo()
	created, err := repo.CreateListing(testListing("alice"))
	require.NoError(t, err)

	require.NoError(t, repo.RemoveListing(created.ListingID))

	_, err = repo.GetListing(created.ListingID)
	require.ErrorIs(t, err, listingerrors.ErrListingNotFound)

	require.ErrorIs(t, repo.RemoveListing(created.ListingID), listingerrors.ErrListingNotFound)
}

// Tests CancelAuction
func TestMemoryRepo_CancelAuction(t *testing.T) {
	repo := NewMemoryRepo()

	t.Run("cancels_auction_listing", func(t *testing.T) {
		created, err := repo.CreateAuctionListing(testListing("alice"), model.AuctionSettings{
			StartingPrice: decimal.NewFromInt(10),
			EndTime:       time.Now().UTC().Add(24 * time.Hour),
		})
		require.NoError(t, err)

		require.NoError(t, repo.CancelAuction(created.ListingID))
		_, err = repo.GetListing(created.ListingID)
		require.ErrorIs(t, err, listingerrors.ErrListingNotFound)
	})

	t.Run("rejects_standard_listing", func(t *testing.T) {
		created, err := repo.CreateListing(testListing("alice"))
		require.NoError(t, err)

		require.ErrorIs(t, repo.CancelAuction(created.ListingID), listingerrors.ErrNotAuction)
	})

	t.Run("rejects_missing_listing", func(t *testing.T) {
		require.ErrorIs(t, repo.CancelAuction("missing"), listingerrors.ErrListingNotFound)
	})
}

// Tests CountBySeller
func TestMemoryRepo_CountBySeller(t *testing.T) {
	repo := NewMemoryRepo()
	for i := 0; i < 3; i++ {
		_, err := repo.CreateListing(testListing("alice"))
		require.NoError(t, err)
	}
	_, err := repo.CreateListing(testListing("bob"))
	require.NoError(t, err)

	count, err := repo.CountBySeller("alice")
	require.NoError(t, err)
	require.Equal(t, 3, count)

	count, err = repo.CountBySeller("nobody")
	require.NoError(t, err)
	require.Zero(t, count)
}

// Tests GetListingViews
func TestMemoryRepo_GetListingViews(t *testing.T) {
	repo := NewMemoryRepo()
	created, err := repo.CreateListing(testListing("alice"))
	require.NoError(t, err)

	views, err := repo.GetListingViews(created.ListingID)
	require.NoError(t, err)
	require.Zero(t, views)

	repo.AddViews(created.ListingID, 42)
	views, err = repo.GetListingViews(created.ListingID)
	require.NoError(t, err)
	require.Equal(t, 42, views)

	_, err = repo.GetListingViews("missing")
	require.ErrorIs(t, err, listingerrors.ErrListingNotFound)
}

// Tests SaveDraft / GetDraftsBySeller / DeleteDraft
func TestMemoryRepo_Drafts(t *testing.T) {
	repo := NewMemoryRepo()
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	older := model.Draft{
		DraftID:      "d-1",
		Seller:       "alice",
		Name:         "first idea",
		CreatedAt:    base,
		LastModified: base,
	}
	newer := model.Draft{
		DraftID:      "d-2",
		Seller:       "alice",
		Name:         "second idea",
		CreatedAt:    base.Add(time.Hour),
		LastModified: base.Add(time.Hour),
	}
	require.NoError(t, repo.SaveDraft(older))
	require.NoError(t, repo.SaveDraft(newer))
	require.NoError(t, repo.SaveDraft(model.Draft{DraftID: "d-3", Seller: "bob", LastModified: base}))

	t.Run("lists_by_seller_most_recent_first", func(t *testing.T) {
		drafts, err := repo.GetDraftsBySeller("alice")
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		require.Equal(t, "d-2", drafts[0].DraftID)
		require.Equal(t, "d-1", drafts[1].DraftID)
	})

	t.Run("overwrite_preserves_creation_time", func(t *testing.T) {
		resaved := older
		resaved.Name = "first idea, renamed"
		resaved.CreatedAt = base.Add(48 * time.Hour)
		resaved.LastModified = base.Add(48 * time.Hour)
		require.NoError(t, repo.SaveDraft(resaved))

		drafts, err := repo.GetDraftsBySeller("alice")
		require.NoError(t, err)
		require.Equal(t, "d-1", drafts[0].DraftID)
		require.Equal(t, "first idea, renamed", drafts[0].Name)
		require.Equal(t, base, drafts[0].CreatedAt)
	})

	t.Run("delete_is_idempotent", func(t *testing.T) {
		require.NoError(t, repo.DeleteDraft("d-1"))
		require.NoError(t, repo.DeleteDraft("d-1"))

		drafts, err := repo.GetDraftsBySeller("alice")
		require.NoError(t, err)
		require.Len(t, drafts, 1)
	})
}

// Tests that stored listings are isolated from caller-held slices
func TestMemoryRepo_CopySemantics(t *testing.T) {
	repo := NewMemoryRepo()
	l := testListing("alice")

	created, err := repo.CreateListing(l)
	require.NoError(t, err)

	l.ImageURLs[0] = "mutated"
	created.Tags[0] = "mutated"

	fetched, err := repo.GetListing(created.ListingID)
	require.NoError(t, err)
	require.Equal(t, "https://img.example/1.jpg", fetched.ImageURLs[0])
	require.Equal(t, "vintage", fetched.Tags[0])
}
