package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// ObjectStore is the blob service holding project images.
type ObjectStore interface {
	// Upload stores the body under key and returns the blob's public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Remove deletes the blob at key. A missing blob yields an error for
	// which errs.IsBlobNotFound is true; every other failure is returned
	// as-is.
	Remove(ctx context.Context, key string) error
}

// UploadKey builds the storage key for a newly uploaded image: the current
// unix-millisecond timestamp joined to the original filename with all
// whitespace replaced by underscores. The timestamp component makes
// collisions negligible.
func UploadKey(filename string, now time.Time) string {
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, filename)
	return fmt.Sprintf("%d_%s", now.UnixMilli(), sanitized)
}

// BlobKeyFromURL derives the storage key of a blob from its public URL: the
// trailing path segment, percent-decoded.
func BlobKeyFromURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("blob URL is empty")
	}
	segment := publicURL
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	key, err := url.PathUnescape(segment)
	if err != nil {
		return "", fmt.Errorf("decoding blob key from %q: %w", publicURL, err)
	}
	if key == "" {
		return "", fmt.Errorf("blob URL %q has no trailing segment", publicURL)
	}
	return key, nil
}
