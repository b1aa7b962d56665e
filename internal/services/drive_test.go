package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrtek/ats-checker/internal/models"
)

func TestExtractFileID(t *testing.T) {
	drive := NewDriveService(10 * time.Second)

	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "file path form",
			link: "https://drive.google.com/file/d/1AbC-dEf_123/view?usp=sharing",
			want: "1AbC-dEf_123",
		},
		{
			name: "query id form",
			link: "https://drive.google.com/open?id=xyz_789-A",
			want: "xyz_789-A",
		},
		{
			name: "short link form",
			link: "https://drive.google.com/d/shortID42",
			want: "shortID42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := drive.ExtractFileID(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestExtractFileIDUnrecognizedShape(t *testing.T) {
	drive := NewDriveService(10 * time.Second)

	_, err := drive.ExtractFileID("https://example.com/resume.pdf")
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailInvalidLinkFormat, failure.Kind)
}

func testDrive(baseURL string) *driveService {
	return &driveService{baseURL: baseURL, timeout: 5 * time.Second}
}

func TestDownloadPDFAcceptsMagicHeader(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4 fake document body")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "download", r.URL.Query().Get("export"))
		assert.Equal(t, "abc123", r.URL.Query().Get("id"))
		w.Write(pdfBytes)
	}))
	defer server.Close()

	content, err := testDrive(server.URL).DownloadPDF(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, content)
}

func TestDownloadPDFClassifiesHTMLAsNotPublic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<!DOCTYPE html><html><body>Sign in to continue</body></html>"))
	}))
	defer server.Close()

	_, err := testDrive(server.URL).DownloadPDF(context.Background(), "abc123")
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailLinkNotPublic, failure.Kind)
}

func TestDownloadPDFClassifiesJunkAsNotAPDF(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("GIF89a not a pdf at all"))
	}))
	defer server.Close()

	_, err := testDrive(server.URL).DownloadPDF(context.Background(), "abc123")
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailNotAValidPDF, failure.Kind)
}

func TestDownloadPDFNon200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testDrive(server.URL).DownloadPDF(context.Background(), "abc123")
	require.Error(t, err)

	failure, ok := models.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, models.FailDownloadFailed, failure.Kind)
	assert.Equal(t, http.StatusForbidden, failure.StatusCode)
}

func TestDownloadPDFFollowsConfirmationCookie(t *testing.T) {
	pdfBytes := []byte("%PDF-1.7 large file body")
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("confirm") == "" {
			http.SetCookie(w, &http.Cookie{Name: "download_warning_13058876", Value: "tok42"})
			w.Write([]byte("<html>Google Drive cannot scan this file for viruses</html>"))
			return
		}
		assert.Equal(t, "tok42", r.URL.Query().Get("confirm"))
		w.Write(pdfBytes)
	}))
	defer server.Close()

	content, err := testDrive(server.URL).DownloadPDF(context.Background(), "bigfile")
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, content)
	assert.Equal(t, 2, requests)
}
