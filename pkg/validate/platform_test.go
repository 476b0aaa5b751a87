package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		platform string
		err      error
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube, nil},
		{"youtube shorts", "https://youtube.com/shorts/abc123", PlatformYouTube, nil},
		{"youtu.be", "https://youtu.be/dQw4w9WgXcQ", PlatformYouTube, nil},
		{"youtube mobile", "https://m.youtube.com/watch?v=abc", PlatformYouTube, nil},
		{"tiktok", "https://www.tiktok.com/@user/video/7123456789", PlatformTikTok, nil},
		{"tiktok vm", "https://vm.tiktok.com/ZM8abcdef/", PlatformTikTok, nil},
		{"instagram reel", "https://www.instagram.com/reel/Cabc123/", PlatformInstagram, nil},
		{"twitter", "https://twitter.com/user/status/123456", PlatformTwitter, nil},
		{"x.com", "https://x.com/user/status/123456", PlatformTwitter, nil},
		{"unsupported host", "https://vimeo.com/123456", "", ErrUnsupportedPlatform},
		{"lookalike host", "https://notyoutube.com/watch?v=abc", "", ErrUnsupportedPlatform},
		{"no scheme", "youtube.com/watch?v=abc", "", ErrInvalidLink},
		{"garbage", "not a link", "", ErrInvalidLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform, err := DetectPlatform(tt.link)
			assert.Equal(t, tt.platform, platform)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidCardNumber(t *testing.T) {
	assert.True(t, ValidCardNumber("4561261212345467"))
	assert.False(t, ValidCardNumber("4561261212345464"))
	assert.False(t, ValidCardNumber("not-a-card"))
}
