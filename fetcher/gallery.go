package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tagGallery/gallery"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"
)

const (
	maxErrorBody = 4 << 10
	userAgent    = "tagGallery/1.0"
)

// GalleryFetcher talks to the gallery backend.
type GalleryFetcher interface {
	FetchAll(ctx context.Context) ([]gallery.MediaRecord, error)
	AddTag(ctx context.Context, sha, tag string) error
	DeleteTag(ctx context.Context, sha, tag string) error
	RenameAll(ctx context.Context) error
	FetchThumbnail(ctx context.Context, ref string) ([]byte, error)
	FetchMedia(ctx context.Context, name string) ([]byte, error)
	ResolveURL(ref string) string
	MediaURL(name string) string
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Op     string
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: server returned %s", e.Op, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *StatusError) StatusCode() int {
	return e.Code
}

type galleryFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewGalleryFetcher builds a fetcher for the server at baseURL. A zero timeout
// leaves requests unbounded apart from their context.
func NewGalleryFetcher(baseURL string, timeout time.Duration) (GalleryFetcher, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("server url must be absolute: %s", baseURL)
	}
	return &galleryFetcher{
		base:   base,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (gf *galleryFetcher) FetchAll(ctx context.Context) ([]gallery.MediaRecord, error) {
	resp, err := gf.do(ctx, "fetch images", http.MethodGet, gf.ResolveURL("/images-meta"))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []gallery.MediaRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode image list: %w", err)
	}
	if records == nil {
		records = []gallery.MediaRecord{}
	}
	return records, nil
}

func (gf *galleryFetcher) AddTag(ctx context.Context, sha, tag string) error {
	return gf.tagRequest(ctx, gallery.ActionAdd, sha, tag)
}

func (gf *galleryFetcher) DeleteTag(ctx context.Context, sha, tag string) error {
	return gf.tagRequest(ctx, gallery.ActionDelete, sha, tag)
}

func (gf *galleryFetcher) tagRequest(ctx context.Context, action gallery.TagAction, sha, tag string) error {
	target := gf.ResolveURL(fmt.Sprintf("/%s-tag?sha=%s&tag=%s", action, escapeComponent(sha), escapeComponent(tag)))
	resp, err := gf.do(ctx, string(action)+" tag", http.MethodPost, target)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (gf *galleryFetcher) RenameAll(ctx context.Context) error {
	resp, err := gf.do(ctx, "rename all", http.MethodPost, gf.ResolveURL("/rename-all"))
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (gf *galleryFetcher) FetchThumbnail(ctx context.Context, ref string) ([]byte, error) {
	return gf.fetchImage(ctx, "fetch thumbnail", gf.ResolveURL(ref))
}

func (gf *galleryFetcher) FetchMedia(ctx context.Context, name string) ([]byte, error) {
	resp, err := gf.do(ctx, "fetch media", http.MethodGet, gf.MediaURL(name))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (gf *galleryFetcher) fetchImage(ctx context.Context, op, target string) ([]byte, error) {
	resp, err := gf.do(ctx, op, http.MethodGet, target)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("%s: response is not an image", op)
	}
	return data, nil
}

// ResolveURL resolves ref against the server. Absolute URLs pass through.
func (gf *galleryFetcher) ResolveURL(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return gf.base.String() + ref
	}
	return gf.base.ResolveReference(u).String()
}

func (gf *galleryFetcher) MediaURL(name string) string {
	return gf.ResolveURL("/images/" + url.PathEscape(name))
}

func (gf *galleryFetcher) do(ctx context.Context, op, method, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", userAgent)

	entry := logrus.WithFields(logrus.Fields{
		"op":         op,
		"method":     method,
		"url":        target,
		"request_id": requestID,
	})
	entry.Debug("Sending request")

	resp, err := gf.client.Do(req)
	if err != nil {
		entry.WithError(err).Warn("Request failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		entry.WithField("status", resp.StatusCode).Warn("Unexpected status")
		return nil, &StatusError{
			Op:     op,
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   strings.TrimSpace(string(body)),
		}
	}
	return resp, nil
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// escapeComponent matches encodeURIComponent: spaces become %20, not +.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
