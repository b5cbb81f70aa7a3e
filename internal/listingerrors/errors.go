package listingerrors

import "errors"

// Repository-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrDraftNotFound   = errors.New("draft not found")
	ErrNotAuction      = errors.New("listing is not an auction")
)

// business logic errors
var (
	ErrInvalidForm       = errors.New("listing form is invalid")
	ErrQuotaExceeded     = errors.New("listing quota exceeded")
	ErrAuctionNotAllowed = errors.New("auctions require a verified seller")
)

// upload errors
var (
	ErrFileRejected    = errors.New("file rejected")
	ErrUploadFailed    = errors.New("image upload failed")
	ErrHostUnavailable = errors.New("image host unavailable")
)
