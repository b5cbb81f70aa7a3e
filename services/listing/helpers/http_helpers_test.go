package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	model "listing-studio/internal/models"
)

// The transport shape must carry the full form, auction mode included, so a
// draft survives the DTO round trip unchanged.
func TestFormPayloadRoundTrip(t *testing.T) {
	form := model.FormState{
		Title:           "Signed first edition",
		Description:     "Signed first edition in protective sleeve.",
		ImageURLs:       []string{"https://img.example/1.jpg"},
		Tags:            "books,rare",
		IsAuction:       true,
		StartingPrice:   "10.00",
		ReservePrice:    "25.00",
		AuctionDuration: "3",
	}

	p := PayloadFromForm(form)
	require.True(t, p.IsAuction)

	back := FormFromPayload(p, p.IsAuction)
	require.Equal(t, form, back)
}
