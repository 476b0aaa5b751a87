package validate

import (
	"errors"
	"net/url"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	PlatformYouTube   = "youtube"
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
)

var (
	ErrInvalidLink         = errors.New("invalid video link")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// DetectPlatform infers the platform from a video link's hostname.
func DetectPlatform(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrInvalidLink
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	switch {
	case host == "youtu.be" || host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		return PlatformYouTube, nil
	case host == "tiktok.com" || strings.HasSuffix(host, ".tiktok.com"):
		return PlatformTikTok, nil
	case host == "instagram.com" || strings.HasSuffix(host, ".instagram.com"):
		return PlatformInstagram, nil
	case host == "twitter.com" || host == "x.com" || strings.HasSuffix(host, ".twitter.com"):
		return PlatformTwitter, nil
	}
	return "", ErrUnsupportedPlatform
}

// ValidCardNumber reports whether a card payout address passes the Luhn check.
func ValidCardNumber(number string) bool {
	return goluhn.Validate(number) == nil
}
