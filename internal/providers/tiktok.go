package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cliphub/cliphub/pkg/clients"
)

const (
	tiktokAPIURL  = "https://tiktok-scraper7.p.rapidapi.com/"
	tiktokAPIHost = "tiktok-scraper7.p.rapidapi.com"
)

// TikTok reads view counts through a RapidAPI scraper, which accepts full
// video links including the short vm.tiktok.com form.
type TikTok struct {
	client clients.HTTPClientI
	apiKey string
}

func NewTikTok(client clients.HTTPClientI, apiKey string) *TikTok {
	return &TikTok{client: client, apiKey: apiKey}
}

type tiktokResponse struct {
	Code int `json:"code"`
	Data struct {
		PlayCount int64 `json:"play_count"`
	} `json:"data"`
}

func (t *TikTok) Fetch(_ context.Context, link string) (int64, error) {
	headers := http.Header{}
	headers.Set("X-RapidAPI-Key", t.apiKey)
	headers.Set("X-RapidAPI-Host", tiktokAPIHost)

	reqURL := tiktokAPIURL + "?url=" + url.QueryEscape(link)
	statusCode, body, err := t.client.Get(reqURL, headers)
	if err != nil {
		return 0, err
	}
	if statusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrBadResponse, statusCode)
	}

	var resp tiktokResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if resp.Code != 0 {
		return 0, ErrVideoNotFound
	}
	return resp.Data.PlayCount, nil
}
