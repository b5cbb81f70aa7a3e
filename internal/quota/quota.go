package quota

// Per-account listing limits by verification tier.
const (
	VerifiedLimit   = 25
	UnverifiedLimit = 2
)

// Limit returns the listing quota for a verification tier.
func Limit(verified bool) int {
	if verified {
		return VerifiedLimit
	}
	return UnverifiedLimit
}

// CanCreate reports whether the account may create another listing.
func CanCreate(verified bool, currentCount int) bool {
	return currentCount < Limit(verified)
}

// CanRunAuction reports auction eligibility. Unverified sellers are blocked
// from auctions regardless of quota headroom; callers check this at the
// gating layer and again inside the publish path.
func CanRunAuction(verified bool) bool {
	return verified
}
