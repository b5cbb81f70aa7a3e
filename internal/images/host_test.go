package images

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"listing-studio/internal/listingerrors"
)

// Tests NewHost selection
func TestNewHost(t *testing.T) {
	require.IsType(t, &LocalHost{}, NewHost("", ""))
	require.IsType(t, &RemoteHost{}, NewHost("https://img.example/upload", "key"))
}

// Tests LocalHost
func TestLocalHost_Upload(t *testing.T) {
	host := &LocalHost{}

	t.Run("synthesizes_data_url", func(t *testing.T) {
		url, err := host.Upload([]byte("abc"), "photo.png", "image/png")
		require.NoError(t, err)
		require.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("abc")), url)
	})

	t.Run("defaults_missing_content_type", func(t *testing.T) {
		url, err := host.Upload([]byte("abc"), "photo", "")
		require.NoError(t, err)
		require.Contains(t, url, "data:application/octet-stream;base64,")
	})

	t.Run("rejects_empty_file", func(t *testing.T) {
		_, err := host.Upload(nil, "empty.png", "image/png")
		require.ErrorIs(t, err, listingerrors.ErrUploadFailed)
	})

	t.Run("delete_is_a_no_op", func(t *testing.T) {
		require.NoError(t, host.Delete("data:image/png;base64,YWJj"))
	})
}

// Tests RemoteHost against a stub HTTP API
func TestRemoteHost_Upload(t *testing.T) {
	t.Run("success_returns_hosted_url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			require.Equal(t, "secret", r.FormValue("key"))
			require.Equal(t, "photo.png", r.FormValue("name"))
			require.NotEmpty(t, r.FormValue("image"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"data":{"url":"https://img.example/abc.png"}}`))
		}))
		defer srv.Close()

		host := NewRemoteHost(srv.URL, "secret")
		url, err := host.Upload([]byte("payload"), "photo.png", "image/png")
		require.NoError(t, err)
		require.Equal(t, "https://img.example/abc.png", url)
	})

	t.Run("api_rejection_maps_to_upload_failed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"error":{"message":"invalid api key"}}`))
		}))
		defer srv.Close()

		host := NewRemoteHost(srv.URL, "wrong")
		_, err := host.Upload([]byte("payload"), "photo.png", "image/png")
		require.ErrorIs(t, err, listingerrors.ErrUploadFailed)
		require.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("unreachable_host_maps_to_host_unavailable", func(t *testing.T) {
		host := NewRemoteHost("http://127.0.0.1:1", "key")
		_, err := host.Upload([]byte("payload"), "photo.png", "image/png")
		require.ErrorIs(t, err, listingerrors.ErrHostUnavailable)
	})
}
