package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"listing-studio/internal/images"
	model "listing-studio/internal/models"
	"listing-studio/services/listing/helpers"
	"listing-studio/utils"
)

// ListingServiceInterface is the slice of the listing service the HTTP
// layer depends on.
type ListingServiceInterface interface {
	CreateListing(seller model.SellerIdentity, form model.FormState) (model.Listing, error)
	CreateAuction(seller model.SellerIdentity, form model.FormState) (model.Listing, error)
	UpdateListing(id string, seller model.SellerIdentity, form model.FormState) (model.Listing, error)
	RemoveListing(id string) error
	CancelAuction(id string) error
	GetListingViews(id string) (int, error)
	SaveDraft(seller model.SellerIdentity, draftID, name string, form model.FormState) (model.Draft, error)
	GetDrafts(seller string) ([]model.Draft, error)
	DeleteDraft(id string) error
}

type ListingHandler struct {
	service ListingServiceInterface
	host    images.Host
}

func NewListingHandler(service ListingServiceInterface, host images.Host) *ListingHandler {
	return &ListingHandler{service: service, host: host}
}

// CreateListingHandler handles POST /listings
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	seller := model.SellerIdentity{Username: req.Seller, IsVerified: req.Verified}
	listing, err := h.service.CreateListing(seller, helpers.FormFromPayload(req.Form, false))
	if err != nil {
		h.fail(c, "CreateListingHandler", err, map[string]any{"seller": req.Seller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ListingToResponse(listing), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"seller":     listing.Seller,
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *ListingHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	seller := model.SellerIdentity{Username: req.Seller, IsVerified: req.Verified}
	listing, err := h.service.CreateAuction(seller, helpers.FormFromPayload(req.Form, true))
	if err != nil {
		h.fail(c, "CreateAuctionHandler", err, map[string]any{"seller": req.Seller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ListingToResponse(listing), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"seller":     listing.Seller,
	})
}

// UpdateListingHandler handles PUT /listings/:listing_id
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	id := c.Param("listing_id")

	var req helpers.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateListingHandler", err)
		return
	}

	seller := model.SellerIdentity{Username: req.Seller, IsVerified: req.Verified}
	listing, err := h.service.UpdateListing(id, seller, helpers.FormFromPayload(req.Form, req.IsAuction))
	if err != nil {
		h.fail(c, "UpdateListingHandler", err, map[string]any{"listing_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ListingToResponse(listing), "listing updated successfully")
	helpers.LogSuccess("UpdateListingHandler", "listing updated successfully", map[string]any{"listing_id": id})
}

// RemoveListingHandler handles DELETE /listings/:listing_id
func (h *ListingHandler) RemoveListingHandler(c *gin.Context) {
	id := c.Param("listing_id")
	if err := h.service.RemoveListing(id); err != nil {
		h.fail(c, "RemoveListingHandler", err, map[string]any{"listing_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": id}, "listing removed successfully")
	helpers.LogSuccess("RemoveListingHandler", "listing removed successfully", map[string]any{"listing_id": id})
}

// CancelAuctionHandler handles POST /auctions/:listing_id/cancel
func (h *ListingHandler) CancelAuctionHandler(c *gin.Context) {
	id := c.Param("listing_id")
	if err := h.service.CancelAuction(id); err != nil {
		h.fail(c, "CancelAuctionHandler", err, map[string]any{"listing_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": id}, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{"listing_id": id})
}

// GetListingViewsHandler handles GET /listings/:listing_id/views
func (h *ListingHandler) GetListingViewsHandler(c *gin.Context) {
	id := c.Param("listing_id")
	count, err := h.service.GetListingViews(id)
	if err != nil {
		h.fail(c, "GetListingViewsHandler", err, map[string]any{"listing_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ViewsResponse{ListingID: id, Views: count}, "views fetched successfully")
}

// UploadImagesHandler handles POST /images. Files arrive as multipart form
// data under "images"; each is validated, normalized and uploaded through
// the configured host. Rejected files are reported without failing the
// accepted ones, but a host failure fails the whole batch.
func (h *ListingHandler) UploadImagesHandler(c *gin.Context) {
	mpForm, err := c.MultipartForm()
	if err != nil {
		helpers.HandleBindError(c, "UploadImagesHandler", err)
		return
	}
	files := mpForm.File["images"]
	if len(files) == 0 {
		helpers.HandleBindError(c, "UploadImagesHandler", fmt.Errorf("no files in field 'images'"))
		return
	}

	var raw []model.RawFile
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			helpers.HandleBindError(c, "UploadImagesHandler", err)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			helpers.HandleBindError(c, "UploadImagesHandler", err)
			return
		}
		raw = append(raw, model.RawFile{Name: fh.Filename, Data: data})
	}

	orch := images.NewOrchestrator(h.host, nil)
	sel := orch.SelectFiles(raw)
	results, err := orch.Upload(nil)
	if err != nil {
		h.fail(c, "UploadImagesHandler", err, map[string]any{"files": len(raw)})
		return
	}

	resp := helpers.UploadResponse{
		URLs:     lo.Map(results, func(r model.UploadResult, _ int) string { return r.URL }),
		Rejected: sel.Rejected,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "images uploaded successfully")
	helpers.LogSuccess("UploadImagesHandler", "images uploaded successfully", map[string]any{
		"uploaded": len(resp.URLs),
		"rejected": len(resp.Rejected),
	})
}

// SaveDraftHandler handles POST /drafts
func (h *ListingHandler) SaveDraftHandler(c *gin.Context) {
	var req helpers.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SaveDraftHandler", err)
		return
	}

	seller := model.SellerIdentity{Username: req.Seller}
	// Drafts keep whatever mode the composer had; only the publish routes
	// force one.
	draft, err := h.service.SaveDraft(seller, req.DraftID, req.Name, helpers.FormFromPayload(req.Form, req.Form.IsAuction))
	if err != nil {
		h.fail(c, "SaveDraftHandler", err, map[string]any{"seller": req.Seller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.DraftToResponse(draft), "draft saved successfully")
	helpers.LogSuccess("SaveDraftHandler", "draft saved successfully", map[string]any{
		"draft_id": draft.DraftID,
		"seller":   draft.Seller,
	})
}

// GetDraftsHandler handles GET /sellers/:seller/drafts
func (h *ListingHandler) GetDraftsHandler(c *gin.Context) {
	seller := c.Param("seller")
	drafts, err := h.service.GetDrafts(seller)
	if err != nil {
		h.fail(c, "GetDraftsHandler", err, map[string]any{"seller": seller})
		return
	}

	resp := lo.Map(drafts, func(d model.Draft, _ int) helpers.DraftResponse { return helpers.DraftToResponse(d) })
	utils.JSONResponse(c, http.StatusOK, resp, "drafts fetched successfully")
}

// DeleteDraftHandler handles DELETE /drafts/:draft_id
func (h *ListingHandler) DeleteDraftHandler(c *gin.Context) {
	id := c.Param("draft_id")
	if err := h.service.DeleteDraft(id); err != nil {
		h.fail(c, "DeleteDraftHandler", err, map[string]any{"draft_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"draft_id": id}, "draft deleted successfully")
}

func (h *ListingHandler) fail(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	utils.Error(handlerName+": request failed", ctx)
}
