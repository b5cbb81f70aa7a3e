package drafts

import (
	"fmt"
	"time"

	"listing-studio/internal/listingerrors"
	model "listing-studio/internal/models"
	"listing-studio/internal/repository"
	"listing-studio/internal/sanitize"
	"listing-studio/utils"
)

// DefaultName is used when a draft is saved without a name.
const DefaultName = "Untitled draft"

// Bridge adapts the external draft-persistence service. The core owns draft
// shaping and sanitizing; storage stays behind repository.DraftDB.
type Bridge struct {
	db repository.DraftDB
}

// NewBridge creates a bridge over the given draft store.
func NewBridge(db repository.DraftDB) *Bridge {
	return &Bridge{db: db}
}

// Save persists a sanitized snapshot of the form. The first save assigns a
// draft id that stays stable on later saves; every save restamps
// LastModified.
func (b *Bridge) Save(seller, draftID, name string, form model.FormState) (model.Draft, error) {
	if draftID == "" {
		draftID = utils.GenerateID()
	}
	name = sanitize.Text(name)
	if name == "" {
		name = DefaultName
	}

	now := time.Now().UTC()
	draft := model.Draft{
		DraftID:      draftID,
		Seller:       seller,
		Name:         name,
		Form:         sanitize.Form(form),
		CreatedAt:    now,
		LastModified: now,
	}
	if err := b.db.SaveDraft(draft); err != nil {
		return model.Draft{}, fmt.Errorf("drafts: failed to save draft %s for %s: %w", draftID, seller, err)
	}

	utils.Info("draft saved", map[string]any{"draft_id": draftID, "seller": seller})
	return draft, nil
}

// List returns a seller's drafts.
func (b *Bridge) List(seller string) ([]model.Draft, error) {
	drafts, err := b.db.GetDraftsBySeller(seller)
	if err != nil {
		return nil, fmt.Errorf("drafts: failed to list drafts for %s: %w", seller, err)
	}
	return drafts, nil
}

// Load re-sanitizes a stored draft before it hydrates any form state, so
// tampered or stale persisted text can never reach the composer unclean.
func (b *Bridge) Load(d model.Draft) model.FormState {
	return sanitize.Form(d.Form)
}

// Get returns one of the seller's drafts by id.
func (b *Bridge) Get(seller, draftID string) (model.Draft, error) {
	drafts, err := b.List(seller)
	if err != nil {
		return model.Draft{}, err
	}
	for _, d := range drafts {
		if d.DraftID == draftID {
			return d, nil
		}
	}
	return model.Draft{}, fmt.Errorf("drafts: %w - %s", listingerrors.ErrDraftNotFound, draftID)
}

// Delete removes a draft. Idempotent: deleting an absent draft succeeds.
func (b *Bridge) Delete(draftID string) error {
	if draftID == "" {
		return nil
	}
	if err := b.db.DeleteDraft(draftID); err != nil {
		return fmt.Errorf("drafts: failed to delete draft %s: %w", draftID, err)
	}
	return nil
}
