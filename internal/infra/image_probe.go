package infra

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// ImageProber checks whether a URL resolves to a loadable image. It backs the
// advisory check on invoice image URLs: a negative answer is logged, never
// used to block a status change.
type ImageProber struct {
	httpClient *http.Client
}

func NewImageProber(timeout time.Duration) *ImageProber {
	return &ImageProber{httpClient: &http.Client{Timeout: timeout}}
}

// LooksLikeImage issues a HEAD request and inspects the Content-Type. Any
// failure counts as "not an image"; callers treat the answer as advisory.
func (p *ImageProber) LooksLikeImage(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}
	return strings.HasPrefix(resp.Header.Get("Content-Type"), "image/")
}
