package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cliphub/cliphub/pkg/clients"
)

const youtubeAPIURL = "https://www.googleapis.com/youtube/v3/videos"

// YouTube reads public view counts through the Data API v3 statistics part.
type YouTube struct {
	client clients.HTTPClientI
	apiKey string
}

func NewYouTube(client clients.HTTPClientI, apiKey string) *YouTube {
	return &YouTube{client: client, apiKey: apiKey}
}

type youtubeResponse struct {
	Items []struct {
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (y *YouTube) Fetch(_ context.Context, link string) (int64, error) {
	videoID, err := extractYouTubeID(link)
	if err != nil {
		return 0, err
	}

	reqURL := fmt.Sprintf("%s?part=statistics&id=%s&key=%s", youtubeAPIURL, url.QueryEscape(videoID), url.QueryEscape(y.apiKey))
	statusCode, body, err := y.client.Get(reqURL, nil)
	if err != nil {
		return 0, err
	}
	if statusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrBadResponse, statusCode)
	}

	var resp youtubeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(resp.Items) == 0 {
		return 0, ErrVideoNotFound
	}

	views, err := strconv.ParseInt(resp.Items[0].Statistics.ViewCount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return views, nil
}

func extractYouTubeID(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	if host == "youtu.be" {
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
		return "", ErrVideoNotFound
	}
	if strings.HasPrefix(u.Path, "/shorts/") {
		if id := strings.Trim(strings.TrimPrefix(u.Path, "/shorts/"), "/"); id != "" {
			return id, nil
		}
		return "", ErrVideoNotFound
	}
	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}
	return "", ErrVideoNotFound
}
