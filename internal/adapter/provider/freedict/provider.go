package freedict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/dictionary-connector/internal/config"
	"github.com/heartmarshall/dictionary-connector/internal/domain"
	"github.com/heartmarshall/dictionary-connector/internal/provider"
)

// DefaultBaseURL is the English entries resource of the FreeDictionary API.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

const (
	maxBodyBytes        = 4 << 20
	defaultMaxIdleConns = 32
)

// upstreamObserver receives the outcome and latency of every upstream call.
type upstreamObserver interface {
	ObserveUpstream(outcome string, d time.Duration)
}

// Provider fetches dictionary data from the FreeDictionary API.
// Each lookup is a single request; failures are never retried.
type Provider struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	obs        upstreamObserver
	log        *slog.Logger
}

// NewProvider creates a Provider from the upstream configuration.
// obs may be nil.
func NewProvider(cfg config.UpstreamConfig, obs upstreamObserver, logger *slog.Logger) *Provider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	idle := cfg.MaxIdleConns
	if idle <= 0 {
		idle = defaultMaxIdleConns
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        idle,
		MaxIdleConnsPerHost: idle,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &Provider{
		baseURL:    baseURL,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{Timeout: cfg.Timeout, Transport: transport},
		obs:        obs,
		log:        logger.With("adapter", "freedict"),
	}
}

// FetchEntries fetches all dictionary entries for the given word.
// It returns domain.ErrNotFound on HTTP 404 and a *domain.UpstreamError for
// any other failure. A successful response may hold zero entries.
func (p *Provider) FetchEntries(ctx context.Context, word string) ([]provider.DictionaryEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Message: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	entries, outcome, err := p.do(req)
	p.observe(outcome, time.Since(start))
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("entries", len(entries)),
	)

	return entries, nil
}

func (p *Provider) do(req *http.Request) ([]provider.DictionaryEntry, string, error) {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, "timeout", &domain.UpstreamError{
				Message: fmt.Sprintf("timeout of %dms exceeded", p.timeout.Milliseconds()),
				Err:     err,
			}
		}
		return nil, "transport_error", &domain.UpstreamError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, "not_found", fmt.Errorf("freedict: %w", domain.ErrNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "bad_status", domain.NewUpstreamStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "transport_error", &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "read body",
			Err:        err,
		}
	}

	var raw []*apiEntry
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, "decode_error", &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "decode json",
			Err:        err,
		}
	}

	entries, err := mapAPIResponse(raw)
	if err != nil {
		return nil, "decode_error", &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "decode json",
			Err:        err,
		}
	}

	return entries, "ok", nil
}

func (p *Provider) observe(outcome string, d time.Duration) {
	if p.obs != nil {
		p.obs.ObserveUpstream(outcome, d)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
