package providers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	statusCode int
	body       []byte
	err        error

	gotURL     string
	gotHeaders http.Header
}

func (f *fakeClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("not used")
}

func (f *fakeClient) Get(url string, headers http.Header) (int, []byte, error) {
	f.gotURL = url
	f.gotHeaders = headers
	return f.statusCode, f.body, f.err
}

func TestYouTube_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the statistics part", func(t *testing.T) {
		client := &fakeClient{
			statusCode: http.StatusOK,
			body:       []byte(`{"items":[{"statistics":{"viewCount":"123456"}}]}`),
		}
		y := NewYouTube(client, "api-key")

		views, err := y.Fetch(ctx, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, int64(123456), views)
		assert.Contains(t, client.gotURL, "id=dQw4w9WgXcQ")
		assert.Contains(t, client.gotURL, "key=api-key")
	})

	t.Run("empty items means missing video", func(t *testing.T) {
		client := &fakeClient{statusCode: http.StatusOK, body: []byte(`{"items":[]}`)}
		_, err := NewYouTube(client, "api-key").Fetch(ctx, "https://youtu.be/gone")
		assert.ErrorIs(t, err, ErrVideoNotFound)
	})

	t.Run("non-200 status", func(t *testing.T) {
		client := &fakeClient{statusCode: http.StatusForbidden, body: []byte(`{}`)}
		_, err := NewYouTube(client, "api-key").Fetch(ctx, "https://youtu.be/abc")
		assert.ErrorIs(t, err, ErrBadResponse)
	})
}

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		link string
		id   string
		ok   bool
	}{
		{"watch", "https://www.youtube.com/watch?v=abc123", "abc123", true},
		{"short link", "https://youtu.be/abc123", "abc123", true},
		{"shorts", "https://youtube.com/shorts/abc123", "abc123", true},
		{"shorts trailing slash", "https://youtube.com/shorts/abc123/", "abc123", true},
		{"no id", "https://youtube.com/feed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := extractYouTubeID(tt.link)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.id, id)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTikTok_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("sends rapidapi headers", func(t *testing.T) {
		client := &fakeClient{
			statusCode: http.StatusOK,
			body:       []byte(`{"code":0,"data":{"play_count":98765}}`),
		}
		views, err := NewTikTok(client, "rapid-key").Fetch(ctx, "https://www.tiktok.com/@user/video/7123")
		require.NoError(t, err)
		assert.Equal(t, int64(98765), views)
		assert.Equal(t, "rapid-key", client.gotHeaders.Get("X-RapidAPI-Key"))
	})

	t.Run("api-level error code", func(t *testing.T) {
		client := &fakeClient{statusCode: http.StatusOK, body: []byte(`{"code":-1}`)}
		_, err := NewTikTok(client, "rapid-key").Fetch(ctx, "https://vm.tiktok.com/gone/")
		assert.ErrorIs(t, err, ErrVideoNotFound)
	})
}

func TestRegistry_Views(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		statusCode: http.StatusOK,
		body:       []byte(`{"items":[{"statistics":{"viewCount":"42"}}]}`),
	}
	registry := NewRegistry(client, "yt-key", "rapid-key")

	views, err := registry.Views(ctx, "youtube", "https://youtu.be/abc")
	require.NoError(t, err)
	assert.Equal(t, int64(42), views)

	_, err = registry.Views(ctx, "instagram", "https://instagram.com/reel/abc/")
	assert.ErrorIs(t, err, ErrNoProvider)
}
