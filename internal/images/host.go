package images

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"listing-studio/internal/listingerrors"
	"listing-studio/utils"
)

// Host is the image-hosting capability. One implementation is selected at
// startup by configuration; callers never branch on which one is in use.
type Host interface {
	// Upload stores the file and returns a resolvable URL.
	Upload(data []byte, filename, contentType string) (string, error)
	// Delete releases a previously uploaded file. Best effort.
	Delete(url string) error
}

// NewHost selects the remote host when an endpoint is configured and the
// local fallback otherwise.
func NewHost(endpoint, apiKey string) Host {
	if endpoint == "" {
		utils.Info("image host unconfigured, using local fallback", nil)
		return &LocalHost{}
	}
	return NewRemoteHost(endpoint, apiKey)
}

// ==================== remote host ====================

// RemoteHost uploads to an HTTP image-hosting API.
type RemoteHost struct {
	client   *resty.Client
	endpoint string
	apiKey   string
}

type remoteUploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL       string `json:"url"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewRemoteHost creates a host backed by the configured endpoint.
func NewRemoteHost(endpoint, apiKey string) *RemoteHost {
	return &RemoteHost{
		client:   resty.New().SetTimeout(30 * time.Second),
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

func (h *RemoteHost) Upload(data []byte, filename, contentType string) (string, error) {
	var result remoteUploadResponse
	resp, err := h.client.R().
		SetFormData(map[string]string{
			"key":   h.apiKey,
			"name":  filename,
			"image": base64.StdEncoding.EncodeToString(data),
		}).
		SetResult(&result).
		Post(h.endpoint)
	if err != nil {
		return "", fmt.Errorf("host: %w - %v", listingerrors.ErrHostUnavailable, err)
	}
	if resp.StatusCode() != 200 || !result.Success || result.Data.URL == "" {
		msg := result.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode())
		}
		return "", fmt.Errorf("host: %w - %s", listingerrors.ErrUploadFailed, msg)
	}
	return result.Data.URL, nil
}

func (h *RemoteHost) Delete(url string) error {
	resp, err := h.client.R().Delete(url)
	if err != nil {
		return fmt.Errorf("host: %w - %v", listingerrors.ErrHostUnavailable, err)
	}
	// 404 means it is already gone, which is what we wanted.
	if resp.StatusCode() >= 500 {
		return fmt.Errorf("host: %w - delete returned HTTP %d", listingerrors.ErrUploadFailed, resp.StatusCode())
	}
	return nil
}

// ==================== local fallback ====================

// LocalHost synthesizes a self-contained data: URL from the raw bytes so the
// rest of the pipeline is indifferent to which host ran. Used when no remote
// image host is configured.
type LocalHost struct{}

func (h *LocalHost) Upload(data []byte, filename, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("host: %w - empty file %q", listingerrors.ErrUploadFailed, filename)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (h *LocalHost) Delete(url string) error {
	// data: URLs hold no external resource.
	return nil
}
