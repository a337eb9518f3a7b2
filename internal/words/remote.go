package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// errUnavailable covers every way the remote source can fail.
var errUnavailable = errors.New("word source unavailable")

// maxBody caps how much of a response is decoded.
const maxBody = 64 << 10

// Remote fetches a random word from an endpoint that answers with a JSON
// array of strings, e.g. ["murciélago"]. The first element is used.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote returns a Remote for url. A nil client means http.DefaultClient.
func NewRemote(url string, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{url: url, client: client}
}

// Word makes a single request and returns the normalized first token, or
// Fallback if anything goes wrong. There is no retry.
func (r *Remote) Word(ctx context.Context) string {
	w, err := r.fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Str("url", r.url).Str("fallback", Fallback).Msg("word fetch failed")
		return Fallback
	}
	log.Debug().Str("url", r.url).Int("len", len([]rune(w))).Msg("word fetched")
	return w
}

func (r *Remote) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", errUnavailable, resp.StatusCode)
	}
	var tokens []string
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&tokens); err != nil {
		return "", fmt.Errorf("%w: decode: %v", errUnavailable, err)
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: empty word list", errUnavailable)
	}
	w, ok := usable(strings.TrimSpace(tokens[0]))
	if !ok {
		return "", fmt.Errorf("%w: unusable word %q", errUnavailable, tokens[0])
	}
	return w, nil
}
