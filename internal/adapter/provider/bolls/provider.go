// Package bolls adapts the bolls.life Bible API: original-language chapter
// text, translated chapter text and the BDBT lexicon.
package bolls

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

const (
	defaultBaseURL = "https://bolls.life"
	defaultTimeout = 10 * time.Second

	lexiconDictionary = "BDBT"
)

// Options configures a Provider. Zero values fall back to defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Provider fetches chapter text and lexicon entries from bolls.life.
// Every call is a single attempt.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from opts.
func NewProvider(logger *slog.Logger, opts Options) *Provider {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout, Transport: opts.Transport},
		log:        logger.With("adapter", "bolls"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(logger, Options{BaseURL: baseURL})
}

// BaseURL returns the configured API root.
func (p *Provider) BaseURL() string {
	return p.baseURL
}

// FetchChapter fetches a whole chapter in an original-language edition
// (provider.EditionHebrew or provider.EditionGreek). Returns nil, nil on HTTP 404.
func (p *Provider) FetchChapter(ctx context.Context, edition string, book, chapter int) ([]provider.ChapterVerse, error) {
	return p.fetchChapter(ctx, "get-chapter", edition, book, chapter)
}

// FetchText fetches a whole chapter in a translation (ESV, KJV, ...).
// Returns nil, nil on HTTP 404.
func (p *Provider) FetchText(ctx context.Context, translation string, book, chapter int) ([]provider.ChapterVerse, error) {
	return p.fetchChapter(ctx, "get-text", translation, book, chapter)
}

func (p *Provider) fetchChapter(ctx context.Context, endpoint, edition string, book, chapter int) ([]provider.ChapterVerse, error) {
	path := "/" + endpoint + "/" + url.PathEscape(edition) + "/" + strconv.Itoa(book) + "/" + strconv.Itoa(chapter) + "/"

	var verses []apiVerse
	found, err := p.getJSON(ctx, path, &verses)
	if err != nil || !found {
		return nil, err
	}

	result := make([]provider.ChapterVerse, 0, len(verses))
	for _, v := range verses {
		result = append(result, provider.ChapterVerse{Verse: v.Verse, Text: v.Text})
	}

	p.log.DebugContext(ctx, "bolls chapter",
		slog.String("edition", edition),
		slog.Int("book", book),
		slog.Int("chapter", chapter),
		slog.Int("verses", len(result)),
	)
	return result, nil
}

// FetchDefinition fetches the lexicon entry for a Strong's number.
// Returns nil, nil if the number is unknown (HTTP 404 or an empty list).
func (p *Provider) FetchDefinition(ctx context.Context, strongs string) (*provider.LexiconResult, error) {
	path := "/dictionary-definition/" + lexiconDictionary + "/" + url.PathEscape(strongs) + "/"

	var entries []apiDefinition
	found, err := p.getJSON(ctx, path, &entries)
	if err != nil || !found || len(entries) == 0 {
		return nil, err
	}

	e := entries[0]
	return &provider.LexiconResult{
		Number:          strongs,
		Lemma:           e.lemma(),
		Transliteration: e.Transliteration,
		Pronunciation:   e.Pronunciation,
		PartOfSpeech:    e.PartOfSpeech,
		Definition:      e.Definition,
		ShortDefinition: e.ShortDefinition,
		Occurrences:     int(e.Occurrences),
	}, nil
}

// getJSON performs a GET and decodes the body into dst. found is false on
// HTTP 404.
func (p *Provider) getJSON(ctx context.Context, path string, dst any) (found bool, err error) {
	reqURL := p.baseURL + path

	p.log.DebugContext(ctx, "bolls request", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("bolls: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("bolls: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("bolls: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("bolls: read body: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return false, fmt.Errorf("bolls: decode json: %w", err)
	}
	return true, nil
}
