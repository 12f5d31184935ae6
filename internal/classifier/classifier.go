// Package classifier assigns a category and payment mode to parsed
// transactions. The local keyword engine handles the common cases; the
// external model is consulted only for unmatched narrations, and its
// failure degrades to CategoryOther/ModeUnknown without failing the
// upload.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudflare/ahocorasick"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/shopspring/decimal"

	"github.com/cognitax/cognitax/internal/ai"
	"github.com/cognitax/cognitax/internal/statement"
)

// fuzzyMaxRank bounds the edit distance accepted by the near-miss pass.
const fuzzyMaxRank = 1

// Result is the classification of one transaction.
type Result struct {
	Category string
	Mode     string
	Source   string // "override", "keyword", "fuzzy", "model" or "fallback"
}

// Overrides looks up user-defined narration patterns. A lookup failure is
// absorbed; the built-in keyword table still applies.
type Overrides interface {
	Find(ctx context.Context, description string) (category, mode string, err error)
}

// Classifier matches narrations against overrides, the built-in keyword
// table (single-pass Aho-Corasick with a fuzzy near-miss fallback), and
// finally the external model.
type Classifier struct {
	matcher   *ahocorasick.Matcher
	patterns  []string
	overrides Overrides
	model     ai.Client
	timeout   time.Duration
}

// New builds a Classifier. overrides and model may be nil; the
// corresponding passes are skipped.
func New(overrides Overrides, model ai.Client, timeout time.Duration) *Classifier {
	patterns := make([]string, 0, len(keywordCategories))
	for kw := range keywordCategories {
		patterns = append(patterns, kw)
	}

	upper := make([]string, len(patterns))
	for i, p := range patterns {
		upper[i] = strings.ToUpper(p)
	}

	return &Classifier{
		matcher:   ahocorasick.NewStringMatcher(upper),
		patterns:  patterns,
		overrides: overrides,
		model:     model,
		timeout:   timeout,
	}
}

// Classify assigns a category and mode to one transaction candidate. It
// never returns an error: every failure path lands on a usable fallback.
func (c *Classifier) Classify(ctx context.Context, desc string, amount decimal.Decimal, dir statement.Direction) Result {
	mode := detectMode(desc)

	if c.overrides != nil {
		category, overrideMode, err := c.overrides.Find(ctx, desc)
		if err != nil {
			slog.Warn("override lookup failed", "error", err)
		} else if category != "" {
			if mode == ModeUnknown && overrideMode != "" {
				mode = overrideMode
			}

			return Result{Category: category, Mode: mode, Source: "override"}
		}
	}

	if category, ok := c.matchKeyword(desc); ok {
		return Result{Category: category, Mode: mode, Source: "keyword"}
	}

	if category, ok := c.matchFuzzy(desc); ok {
		return Result{Category: category, Mode: mode, Source: "fuzzy"}
	}

	if c.model != nil {
		if res, ok := c.askModel(ctx, desc, amount, dir); ok {
			if mode == ModeUnknown && res.Mode != ModeUnknown {
				return Result{Category: res.Category, Mode: res.Mode, Source: "model"}
			}

			return Result{Category: res.Category, Mode: mode, Source: "model"}
		}
	}

	return Result{Category: CategoryOther, Mode: mode, Source: "fallback"}
}

// matchKeyword runs the single-pass multi-pattern search. When several
// keywords hit, the longest one wins.
func (c *Classifier) matchKeyword(desc string) (string, bool) {
	hits := c.matcher.Match([]byte(strings.ToUpper(desc)))
	if len(hits) == 0 {
		return "", false
	}

	best := ""

	for _, idx := range hits {
		if len(c.patterns[idx]) > len(best) {
			best = c.patterns[idx]
		}
	}

	return keywordCategories[best], true
}

// matchFuzzy tolerates small typos in narration words before giving up on
// local classification. Short keywords are excluded; they produce too many
// accidental matches at distance one.
func (c *Classifier) matchFuzzy(desc string) (string, bool) {
	words := strings.Fields(strings.ToLower(desc))

	for _, kw := range c.patterns {
		if len(kw) < 5 || strings.ContainsRune(kw, ' ') {
			continue
		}

		for _, word := range words {
			rank := fuzzy.RankMatchFold(kw, word)
			if rank >= 0 && rank <= fuzzyMaxRank {
				return keywordCategories[kw], true
			}
		}
	}

	return "", false
}

type modelClassification struct {
	Category string `json:"category"`
	Mode     string `json:"mode"`
}

const classifySystem = "You are an expert at classifying Indian bank statement transactions."

func (c *Classifier) askModel(ctx context.Context, desc string, amount decimal.Decimal, dir statement.Direction) (Result, bool) {
	prompt := fmt.Sprintf(`Classify this bank transaction.

Description: %s
Amount: %s
Direction: %s

Pick category from: %s
Pick mode from: %s

Return ONLY a JSON object: {"category": "...", "mode": "..."}`,
		desc, amount.StringFixed(2), dir,
		strings.Join(Categories, ", "), strings.Join(Modes, ", "))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.model.Send(ctx, prompt, classifySystem)
	if err != nil {
		slog.Warn("model classification unavailable", "error", err)
		return Result{}, false
	}

	var parsed modelClassification
	if err := json.Unmarshal([]byte(stripFences(reply)), &parsed); err != nil {
		slog.Warn("model classification unparseable", "error", err)
		return Result{}, false
	}

	if !validCategory(parsed.Category) {
		return Result{}, false
	}

	mode := parsed.Mode
	if !validMode(mode) {
		mode = ModeUnknown
	}

	return Result{Category: parsed.Category, Mode: mode}, true
}

// stripFences removes Markdown code fences the model sometimes wraps JSON
// in, despite being told not to.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}

		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
