package facades

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
)

// ErrPDFNotConfigured is returned when no Gotenberg endpoint was configured.
var ErrPDFNotConfigured = errors.New("pdf converter not configured")

// GotenbergPDFFacade converts HTML documents to PDF through a Gotenberg service.
type GotenbergPDFFacade struct {
	endpoint string
	client   *http.Client
}

// NewGotenbergPDFFacade creates a new facade for the Gotenberg instance at endpoint.
func NewGotenbergPDFFacade(endpoint string, client *http.Client) *GotenbergPDFFacade {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &GotenbergPDFFacade{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   client,
	}
}

// ConvertHTML renders the given HTML document and returns the PDF bytes.
func (f *GotenbergPDFFacade) ConvertHTML(ctx context.Context, html []byte) ([]byte, error) {
	if f.endpoint == "" {
		return nil, ErrPDFNotConfigured
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	// Gotenberg requires the main document to be named index.html.
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(html); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to call gotenberg", "error", err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		err := fmt.Errorf("gotenberg response %d: %s", resp.StatusCode, string(data))
		logger.Log.Errorw("pdf conversion failed", "status", resp.StatusCode, "error", err)
		return nil, err
	}

	return io.ReadAll(resp.Body)
}

// Ping checks that the Gotenberg service is reachable.
func (f *GotenbergPDFFacade) Ping(ctx context.Context) error {
	if f.endpoint == "" {
		return ErrPDFNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("gotenberg returned status %d", resp.StatusCode)
	}
	return nil
}
