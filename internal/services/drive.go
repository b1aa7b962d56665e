package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"

	"hrtek/ats-checker/internal/models"
)

const defaultDriveDownloadURL = "https://drive.google.com/uc"

// Ordered: the path-segment form must win over the bare /d/ form.
var driveIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`),
}

type DriveService interface {
	ExtractFileID(link string) (string, error)
	DownloadPDF(ctx context.Context, fileID string) ([]byte, error)
}

type driveService struct {
	baseURL string
	timeout time.Duration
}

func NewDriveService(timeout time.Duration) DriveService {
	return &driveService{
		baseURL: defaultDriveDownloadURL,
		timeout: timeout,
	}
}

// ExtractFileID implements DriveService.
func (d *driveService) ExtractFileID(link string) (string, error) {
	for _, pattern := range driveIDPatterns {
		if match := pattern.FindStringSubmatch(link); match != nil {
			return match[1], nil
		}
	}

	return "", models.NewFailure(
		models.FailInvalidLinkFormat,
		"could not find a file ID in the link",
	)
}

// DownloadPDF implements DriveService. The cookie session lives for exactly
// one download: a large-file interstitial sets a download_warning cookie that
// must come back as a confirm parameter on the follow-up request.
func (d *driveService) DownloadPDF(ctx context.Context, fileID string) ([]byte, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	client := &http.Client{
		Jar:     jar,
		Timeout: d.timeout,
	}

	downloadURL := fmt.Sprintf("%s?export=download&id=%s", d.baseURL, url.QueryEscape(fileID))

	resp, err := d.get(ctx, client, downloadURL)
	if err != nil {
		return nil, models.WrapFailure(models.FailDownloadFailed, "download request failed", err)
	}

	// Large-file "virus scan" interstitial: reissue with the confirmation token.
	for _, cookie := range resp.Cookies() {
		if strings.HasPrefix(cookie.Name, "download_warning") {
			resp.Body.Close()
			confirmURL := fmt.Sprintf("%s&confirm=%s", downloadURL, url.QueryEscape(cookie.Value))
			resp, err = d.get(ctx, client, confirmURL)
			if err != nil {
				return nil, models.WrapFailure(models.FailDownloadFailed, "confirmation request failed", err)
			}
			break
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f := models.NewFailure(
			models.FailDownloadFailed,
			fmt.Sprintf("download failed with status %d", resp.StatusCode),
		)
		f.StatusCode = resp.StatusCode
		return nil, f
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.WrapFailure(models.FailDownloadFailed, "failed to read download body", err)
	}

	return classifyDriveContent(content)
}

func (d *driveService) get(ctx context.Context, client *http.Client, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return client.Do(req)
}

// classifyDriveContent accepts only bytes that start with the PDF magic
// header. An HTML page means the sharing permissions block anonymous access.
func classifyDriveContent(content []byte) ([]byte, error) {
	if bytes.HasPrefix(content, []byte("%PDF")) {
		return content, nil
	}

	if bytes.Contains(content, []byte("<!DOCTYPE html")) || bytes.Contains(content, []byte("<html")) {
		return nil, models.NewFailure(
			models.FailLinkNotPublic,
			"link is not public; set sharing to 'Anyone with the link can view'",
		)
	}

	return nil, models.NewFailure(models.FailNotAValidPDF, "downloaded file is not a valid PDF")
}
