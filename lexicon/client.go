package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cours-de-latin/tslamyu"
)

// DefaultBaseURL is the public Reykunyu dictionary.
const DefaultBaseURL = "https://reykunyu.wimiso.nl"

// Client looks words up in a Reykunyu-compatible dictionary service through
// its /api/fwew endpoint.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.client = hc }
}

// WithClientLogger logs every request to l.
func WithClientLogger(l *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a Client for the service at baseURL. An empty baseURL
// means DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Lookup implements tslamyu.Lookup.
func (c *Client) Lookup(ctx context.Context, word string) ([]tslamyu.LexicalAnalysis, error) {
	endpoint := c.baseURL + "/api/fwew?" + url.Values{"tìpawm": {word}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fwew request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fwew returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var results []fwewResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode fwew response: %w", err)
	}
	c.logger.Debug("fwew lookup", zap.String("word", word), zap.Int("results", len(results)), zap.Duration("took", time.Since(start)))

	var out []tslamyu.LexicalAnalysis
	for _, r := range results {
		for _, e := range r.Entries {
			out = append(out, e.analysis(r.Query))
		}
	}
	return out, nil
}

// fwewResult is the answer for one word of the query. Field names carry
// apostrophes, which struct tags cannot express, hence the manual decoding.
type fwewResult struct {
	Query   string
	Entries []fwewEntry
}

func (r *fwewResult) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if q, ok := raw["tìpawm"]; ok {
		if err := json.Unmarshal(q, &r.Query); err != nil {
			return fmt.Errorf("tìpawm: %w", err)
		}
	}
	if es, ok := raw["sì'eyng"]; ok {
		if err := json.Unmarshal(es, &r.Entries); err != nil {
			return fmt.Errorf("sì'eyng: %w", err)
		}
	}
	return nil
}

type fwewEntry struct {
	Navi             string              `json:"-"`
	Type             string              `json:"type"`
	Translations     []map[string]string `json:"translations"`
	ShortTranslation string              `json:"short_translation"`
	Conjugated       []fwewConjugated    `json:"conjugated"`
}

func (e *fwewEntry) UnmarshalJSON(b []byte) error {
	type plain fwewEntry
	if err := json.Unmarshal(b, (*plain)(e)); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["na'vi"]; ok {
		if err := json.Unmarshal(v, &e.Navi); err != nil {
			return fmt.Errorf("na'vi: %w", err)
		}
	}
	return nil
}

type fwewConjugated struct {
	Type        string `json:"type"`
	Conjugation struct {
		Affixes []json.RawMessage `json:"affixes"`
		Form    string            `json:"form"`
	} `json:"conjugation"`
}

// analysis converts the entry to the analyzer's model. surface is the word
// as queried.
func (e fwewEntry) analysis(surface string) tslamyu.LexicalAnalysis {
	a := tslamyu.LexicalAnalysis{
		Surface:      surface,
		Headword:     e.Navi,
		PartOfSpeech: tslamyu.PartOfSpeech(e.Type),
	}
	for i, t := range e.Translations {
		g := tslamyu.Gloss{Text: t["en"]}
		if i == 0 {
			g.Short = e.ShortTranslation
		}
		a.Glosses = append(a.Glosses, g)
	}
	if len(e.Conjugated) > 0 {
		conj := e.Conjugated[0].Conjugation
		a.Morphology = make([]string, len(conj.Affixes))
		for i, raw := range conj.Affixes {
			a.Morphology[i] = affixText(raw)
		}
		a.Attachment = tslamyu.Attachment(conj.Form)
	}
	if a.PartOfSpeech == tslamyu.POSProperNoun {
		a.CanonicalSpelling = e.Navi
	}
	return a
}

// affixText reads one affix slot. Slots hold a plain string, or an object
// or list describing the affix; only the spelling is kept.
func affixText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		if v, ok := obj["na'vi"]; ok {
			_ = json.Unmarshal(v, &s)
			return s
		}
		return ""
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if p := affixText(item); p != "" {
				parts = append(parts, p)
			}
		}
		return strings.Join(parts, "")
	}
	return ""
}
