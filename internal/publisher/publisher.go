package publisher

import (
	"fmt"
	"sync"
	"time"

	"listing-studio/internal/drafts"
	"listing-studio/internal/formstate"
	"listing-studio/internal/images"
	"listing-studio/internal/listingerrors"
	model "listing-studio/internal/models"
	"listing-studio/internal/quota"
	"listing-studio/internal/sanitize"
	"listing-studio/internal/validation"
	"listing-studio/internal/views"
	"listing-studio/utils"
)

// ErrorBannerTTL is how long a surfaced publish error stays visible before
// it auto-clears.
const ErrorBannerTTL = 5 * time.Second

// ListingAPI is the consumed listing/auction service contract.
type ListingAPI interface {
	CreateListing(seller model.SellerIdentity, form model.FormState) (model.Listing, error)
	CreateAuction(seller model.SellerIdentity, form model.FormState) (model.Listing, error)
	UpdateListing(id string, seller model.SellerIdentity, form model.FormState) (model.Listing, error)
	RemoveListing(id string) error
	CancelAuction(id string) error
	CountBySeller(seller string) (int, error)
	GetListingViews(id string) (int, error)
}

// State is the submit machine's current position.
type State int

const (
	Idle State = iota
	Validating
	Uploading
	Publishing
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Uploading:
		return "uploading"
	case Publishing:
		return "publishing"
	default:
		return "idle"
	}
}

// Intent is the publish decision, resolved once at validation time and then
// passed opaquely through the pipeline.
type Intent interface{ isIntent() }

// StandardIntent publishes a fixed-price listing.
type StandardIntent struct {
	Form model.FormState
}

// AuctionIntent publishes an auction. The service derives the auction
// settings from the form at the publish instant, so the intent carries only
// the form.
type AuctionIntent struct {
	Form model.FormState
}

func (StandardIntent) isIntent() {}
func (AuctionIntent) isIntent()  {}

// Publisher drives one composer session from form state to a published
// listing: authoritative validation, quota gating, pending-file upload and
// the publish call itself, plus the simpler cancel/remove flows.
type Publisher struct {
	seller model.SellerIdentity
	store  *formstate.Store
	orch   *images.Orchestrator
	drafts *drafts.Bridge
	api    ListingAPI
	views  *views.Tracker

	mu        sync.Mutex
	state     State
	lastError string
	errGen    int
	errTimer  *time.Timer
}

// New creates a publisher for one seller session.
func New(seller model.SellerIdentity, store *formstate.Store, orch *images.Orchestrator, draftBridge *drafts.Bridge, api ListingAPI) *Publisher {
	return &Publisher{
		seller: seller,
		store:  store,
		orch:   orch,
		drafts: draftBridge,
		api:    api,
		views:  views.NewTracker(api),
	}
}

// Store exposes the session's form-state store.
func (p *Publisher) Store() *formstate.Store { return p.store }

// Orchestrator exposes the session's image-upload orchestrator.
func (p *Publisher) Orchestrator() *images.Orchestrator { return p.orch }

// State returns the submit machine's current position.
func (p *Publisher) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Submit runs the full publish pipeline. On validation failure the failing
// fields are marked touched and no network call happens. On a service
// failure the form and any linked draft stay intact. On success the linked
// draft is consumed and the form fully resets.
func (p *Publisher) Submit() (model.Listing, error) {
	p.setState(Validating)
	defer p.setState(Idle)

	// Authoritative validation pass, independent of any live checks.
	form := p.store.Snapshot()
	result := validation.Evaluate(form, p.orch.PendingCount())
	if !result.IsValid {
		p.store.SetValidation(result, true)
		return model.Listing{}, fmt.Errorf("publish: %w - %s", listingerrors.ErrInvalidForm, result.FirstMessage())
	}
	p.store.SetValidation(result, false)

	// Client-side gate; the service re-checks both rules fail-closed.
	if form.IsAuction && !quota.CanRunAuction(p.seller.IsVerified) {
		err := fmt.Errorf("publish: %w", listingerrors.ErrAuctionNotAllowed)
		p.surfaceError(err.Error())
		return model.Listing{}, err
	}
	editing := p.store.Editing()
	if !editing.IsEditing {
		count, err := p.api.CountBySeller(p.seller.Username)
		if err != nil {
			p.surfaceError(sanitize.Text(err.Error()))
			return model.Listing{}, fmt.Errorf("publish: failed to check quota: %w", err)
		}
		if !quota.CanCreate(p.seller.IsVerified, count) {
			err := fmt.Errorf("publish: %w - %d of %d listings used", listingerrors.ErrQuotaExceeded, count, quota.Limit(p.seller.IsVerified))
			p.surfaceError(err.Error())
			return model.Listing{}, err
		}
	}

	// Upload any pending files. A batch failure commits no URLs and keeps
	// the form and draft untouched.
	if p.orch.PendingCount() > 0 {
		p.setState(Uploading)
		results, err := p.orch.Upload(func(percent int) {
			utils.Info("upload progress", map[string]any{"seller": p.seller.Username, "percent": percent})
		})
		if err != nil {
			p.surfaceError(sanitize.Text(err.Error()))
			return model.Listing{}, fmt.Errorf("publish: %w", err)
		}
		urls := make([]string, len(results))
		for i, r := range results {
			urls[i] = r.URL
		}
		p.store.AppendImageURLs(urls)
		form = p.store.Snapshot()
	}

	// Resolve the intent once from the final form snapshot.
	intent := p.resolveIntent(form)

	p.setState(Publishing)
	published, err := p.publish(intent, editing)
	if err != nil {
		p.surfaceError(sanitize.Text(err.Error()))
		return model.Listing{}, fmt.Errorf("publish: %w", err)
	}

	// Success: the originating draft is consumed exactly once, then the
	// whole session resets.
	if draftID := p.store.DraftID(); draftID != "" {
		if err := p.drafts.Delete(draftID); err != nil {
			utils.Warn("failed to delete consumed draft", map[string]any{"draft_id": draftID, "error": err.Error()})
		}
	}
	p.store.Reset()
	p.orch.ClearPending()
	p.clearError()

	utils.Info("listing published", map[string]any{
		"listing_id": published.ListingID,
		"seller":     p.seller.Username,
		"auction":    published.IsAuction(),
		"editing":    editing.IsEditing,
	})
	return published, nil
}

func (p *Publisher) resolveIntent(form model.FormState) Intent {
	if form.IsAuction {
		return AuctionIntent{Form: form}
	}
	return StandardIntent{Form: form}
}

func (p *Publisher) publish(intent Intent, editing model.EditingState) (model.Listing, error) {
	switch it := intent.(type) {
	case AuctionIntent:
		if editing.IsEditing {
			return p.api.UpdateListing(editing.ListingID, p.seller, it.Form)
		}
		return p.api.CreateAuction(p.seller, it.Form)
	case StandardIntent:
		if editing.IsEditing {
			return p.api.UpdateListing(editing.ListingID, p.seller, it.Form)
		}
		return p.api.CreateListing(p.seller, it.Form)
	default:
		return model.Listing{}, fmt.Errorf("publish: unknown intent %T", intent)
	}
}

// SaveDraft persists the current form as a draft and links it to the
// session; the id stays stable across saves.
func (p *Publisher) SaveDraft(name string) (model.Draft, error) {
	d, err := p.drafts.Save(p.seller.Username, p.store.DraftID(), name, p.store.Snapshot())
	if err != nil {
		p.surfaceError(sanitize.Text(err.Error()))
		return model.Draft{}, err
	}
	p.store.LinkDraft(d.DraftID)
	return d, nil
}

// LoadDraft hydrates the form from a stored draft, re-sanitized on the way
// in.
func (p *Publisher) LoadDraft(d model.Draft) {
	p.store.LoadForm(p.drafts.Load(d), d.DraftID)
	p.orch.ClearPending()
}

// Drafts returns the seller's saved drafts.
func (p *Publisher) Drafts() ([]model.Draft, error) {
	return p.drafts.List(p.seller.Username)
}

// CancelAuction cancels one of the seller's auctions. Confirmation is the
// caller's job; list refresh is the external collaborator's.
func (p *Publisher) CancelAuction(id string) error {
	if err := p.api.CancelAuction(id); err != nil {
		p.surfaceError(sanitize.Text(err.Error()))
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// RemoveListing removes one of the seller's listings.
func (p *Publisher) RemoveListing(id string) error {
	if err := p.api.RemoveListing(id); err != nil {
		p.surfaceError(sanitize.Text(err.Error()))
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// ListingViews returns the view count for one listing, fetched at most once
// per session.
func (p *Publisher) ListingViews(id string) (int, error) {
	return p.views.Views(id)
}

// LastError returns the currently surfaced user-visible error, if any.
func (p *Publisher) LastError() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastError
}

// Close releases the session's timer. Call on teardown.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.errTimer != nil {
		p.errTimer.Stop()
		p.errTimer = nil
	}
}

func (p *Publisher) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// surfaceError records a user-visible message and schedules its dismissal.
// The generation counter makes sure a stale timer never clears a newer
// message.
func (p *Publisher) surfaceError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lastError = msg
	p.errGen++
	gen := p.errGen
	if p.errTimer != nil {
		p.errTimer.Stop()
	}
	p.errTimer = time.AfterFunc(ErrorBannerTTL, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.errGen == gen {
			p.lastError = ""
		}
	})
}

func (p *Publisher) clearError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastError = ""
	p.errGen++
	if p.errTimer != nil {
		p.errTimer.Stop()
		p.errTimer = nil
	}
}
