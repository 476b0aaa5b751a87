package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/cliphub/cliphub/pkg/clients"
	"github.com/cliphub/cliphub/pkg/validate"
)

var (
	ErrNoProvider    = errors.New("no view provider for platform")
	ErrVideoNotFound = errors.New("video not found")
	ErrBadResponse   = errors.New("unexpected provider response")
)

// Fetcher resolves the current public view count of one platform's links.
type Fetcher interface {
	Fetch(ctx context.Context, link string) (int64, error)
}

// Registry routes view lookups to per-platform fetchers. Platforms without a
// usable public API (analytics-proof platforms) simply have no fetcher here;
// their counts are entered by reviewers.
type Registry struct {
	fetchers map[string]Fetcher
}

func NewRegistry(client clients.HTTPClientI, youtubeAPIKey, rapidAPIKey string) *Registry {
	return &Registry{
		fetchers: map[string]Fetcher{
			validate.PlatformYouTube: NewYouTube(client, youtubeAPIKey),
			validate.PlatformTikTok:  NewTikTok(client, rapidAPIKey),
		},
	}
}

func (r *Registry) Views(ctx context.Context, platform, link string) (int64, error) {
	fetcher, ok := r.fetchers[platform]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoProvider, platform)
	}
	return fetcher.Fetch(ctx, link)
}
