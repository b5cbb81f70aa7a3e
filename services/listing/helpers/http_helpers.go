package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"listing-studio/internal/listingerrors"
	model "listing-studio/internal/models"
	"listing-studio/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, listingerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, listingerrors.ErrDraftNotFound):
		return http.StatusNotFound, "draft not found"
	case errors.Is(err, listingerrors.ErrInvalidForm):
		return http.StatusBadRequest, "listing details are invalid"
	case errors.Is(err, listingerrors.ErrQuotaExceeded):
		return http.StatusConflict, "listing quota exceeded"
	case errors.Is(err, listingerrors.ErrAuctionNotAllowed):
		return http.StatusForbidden, "auctions require a verified seller"
	case errors.Is(err, listingerrors.ErrNotAuction):
		return http.StatusConflict, "listing is not an auction"
	case errors.Is(err, listingerrors.ErrFileRejected):
		return http.StatusBadRequest, "file rejected"
	case errors.Is(err, listingerrors.ErrUploadFailed), errors.Is(err, listingerrors.ErrHostUnavailable):
		return http.StatusBadGateway, "image upload failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// FormFromPayload converts a transport form into domain form state. The
// route decides isAuction for publish endpoints; draft endpoints pass the
// payload's own flag through.
func FormFromPayload(p FormPayload, isAuction bool) model.FormState {
	return model.FormState{
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		ImageURLs:       p.ImageURLs,
		IsPremium:       p.IsPremium,
		Tags:            p.Tags,
		HoursWorn:       p.HoursWorn,
		IsAuction:       isAuction,
		StartingPrice:   p.StartingPrice,
		ReservePrice:    p.ReservePrice,
		AuctionDuration: p.AuctionDuration,
	}
}

// PayloadFromForm converts domain form state back into its transport shape.
func PayloadFromForm(f model.FormState) FormPayload {
	return FormPayload{
		Title:           f.Title,
		Description:     f.Description,
		Price:           f.Price,
		ImageURLs:       f.ImageURLs,
		IsPremium:       f.IsPremium,
		Tags:            f.Tags,
		HoursWorn:       f.HoursWorn,
		IsAuction:       f.IsAuction,
		StartingPrice:   f.StartingPrice,
		ReservePrice:    f.ReservePrice,
		AuctionDuration: f.AuctionDuration,
	}
}

// ListingToResponse converts a listing into its transport shape.
func ListingToResponse(l model.Listing) ListingResponse {
	resp := ListingResponse{
		ListingID:   l.ListingID,
		Seller:      l.Seller,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price.String(),
		ImageURLs:   l.ImageURLs,
		IsPremium:   l.IsPremium,
		Tags:        l.Tags,
		HoursWorn:   l.HoursWorn,
		IsAuction:   l.IsAuction(),
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.Auction != nil {
		resp.Starting = l.Auction.StartingPrice.String()
		if l.Auction.ReservePrice != nil {
			resp.Reserve = l.Auction.ReservePrice.String()
		}
		resp.EndTime = l.Auction.EndTime.UTC().Format(time.RFC3339)
	}
	return resp
}

// DraftToResponse converts a draft into its transport shape.
func DraftToResponse(d model.Draft) DraftResponse {
	return DraftResponse{
		DraftID:      d.DraftID,
		Seller:       d.Seller,
		Name:         d.Name,
		Form:         PayloadFromForm(d.Form),
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
		LastModified: d.LastModified.UTC().Format(time.RFC3339),
	}
}
