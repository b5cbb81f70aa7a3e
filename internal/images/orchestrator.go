package images

import (
	"fmt"
	"sync"

	"github.com/samber/lo"

	"listing-studio/internal/imaging"
	"listing-studio/internal/listingerrors"
	"listing-studio/internal/models"
	"listing-studio/utils"
)

// Constraints bound what the gatekeeper accepts.
type Constraints struct {
	MaxBytes     int64
	AllowedTypes []string
}

// ListingPhotoConstraints apply to all listing photos.
var ListingPhotoConstraints = Constraints{
	MaxBytes:     5 << 20, // 5MB
	AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
}

// FileValidator is the content-agnostic gatekeeper consulted before any
// file is accepted.
type FileValidator interface {
	Validate(file models.RawFile, c Constraints) error
}

// sniffValidator checks size and the sniffed MIME type against the
// constraints. Extensions and client headers are ignored.
type sniffValidator struct{}

func (sniffValidator) Validate(file models.RawFile, c Constraints) error {
	if int64(len(file.Data)) > c.MaxBytes {
		return fmt.Errorf("%w - file exceeds %dMB", listingerrors.ErrFileRejected, c.MaxBytes>>20)
	}
	detected := imaging.Sniff(file.Data)
	if !lo.Contains(c.AllowedTypes, detected) {
		return fmt.Errorf("%w - unsupported type %s", listingerrors.ErrFileRejected, detected)
	}
	return nil
}

// Orchestrator validates selected files, uploads them through the configured
// host and reports progress. Pending files accumulate across selections and
// are only cleared by a fully successful upload or an explicit reset.
type Orchestrator struct {
	host      Host
	validator FileValidator

	mu      sync.Mutex
	pending []models.RawFile
}

// NewOrchestrator creates an orchestrator over the given host. A nil
// validator falls back to the sniffing gatekeeper.
func NewOrchestrator(host Host, validator FileValidator) *Orchestrator {
	if validator == nil {
		validator = sniffValidator{}
	}
	return &Orchestrator{host: host, validator: validator}
}

// SelectFiles runs every raw file through the gatekeeper. A failing file is
// reported and skipped, never aborting the rest; accepted files are appended
// to the pending list.
func (o *Orchestrator) SelectFiles(raw []models.RawFile) models.Selection {
	var sel models.Selection
	for _, f := range raw {
		if err := o.validator.Validate(f, ListingPhotoConstraints); err != nil {
			sel.Rejected = append(sel.Rejected, models.RejectedFile{Name: f.Name, Reason: err.Error()})
			continue
		}
		sel.Accepted = append(sel.Accepted, f)
	}

	if len(sel.Accepted) > 0 {
		o.mu.Lock()
		o.pending = append(o.pending, sel.Accepted...)
		o.mu.Unlock()
	}
	if len(sel.Rejected) > 0 {
		utils.Warn("files rejected during selection", map[string]any{
			"rejected": lo.Map(sel.Rejected, func(r models.RejectedFile, _ int) string { return r.Name }),
		})
	}
	return sel
}

// PendingCount returns the number of files awaiting upload.
func (o *Orchestrator) PendingCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}

// Pending returns a copy of the files awaiting upload.
func (o *Orchestrator) Pending() []models.RawFile {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]models.RawFile(nil), o.pending...)
}

// RemovePending drops one file before upload. Synchronous and
// side-effect-free; out-of-range indices are a no-op.
func (o *Orchestrator) RemovePending(i int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if i < 0 || i >= len(o.pending) {
		return
	}
	o.pending = append(o.pending[:i], o.pending[i+1:]...)
}

// ClearPending drops all files awaiting upload.
func (o *Orchestrator) ClearPending() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = nil
}

// Upload sends all pending files strictly sequentially so progress is
// monotonic and attributable to a deterministic file order. onProgress, when
// non-nil, receives the overall percent after each file and reaches exactly
// 100 after the last one. Any host failure rejects the whole batch: no URLs
// are returned and the pending list is left intact for a retry.
func (o *Orchestrator) Upload(onProgress func(percent int)) ([]models.UploadResult, error) {
	files := o.Pending()
	if len(files) == 0 {
		return nil, nil
	}

	results := make([]models.UploadResult, 0, len(files))
	for i, f := range files {
		data, contentType, err := imaging.Normalize(f.Data)
		if err != nil {
			return nil, fmt.Errorf("upload: %w - %s: %v", listingerrors.ErrUploadFailed, f.Name, err)
		}
		url, err := o.host.Upload(data, f.Name, contentType)
		if err != nil {
			return nil, fmt.Errorf("upload: %s: %w", f.Name, err)
		}
		results = append(results, models.UploadResult{Name: f.Name, URL: url})
		if onProgress != nil {
			onProgress((i + 1) * 100 / len(files))
		}
	}

	o.ClearPending()
	return results, nil
}

// Reorder moves urls[from] to position to. The first element after a reorder
// becomes the cover image. Out-of-range indices leave the list unchanged.
func Reorder(urls []string, from, to int) []string {
	out := append([]string(nil), urls...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out
}
