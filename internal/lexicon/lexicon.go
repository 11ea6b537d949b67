// Package lexicon holds the keyword and pattern tables that drive
// extraction: event vocabularies, asset aliases, mechanism patterns,
// movement indicator buckets, and causal rules. A Lexicon is inert
// data until Compile turns it into matchers; the extraction engine
// only ever sees a compiled lexicon.
package lexicon

import (
	"regexp"
	"sort"
	"strings"

	"mkg/internal/errors"
	"mkg/internal/graph"
)

// Bucket is a movement indicator severity class. Buckets collapse to a
// ternary direction when matched against text.
type Bucket string

const (
	StrongPositive Bucket = "strong_positive"
	BucketPositive Bucket = "positive"
	WeakPositive   Bucket = "weak_positive"
	StrongNegative Bucket = "strong_negative"
	BucketNegative Bucket = "negative"
	WeakNegative   Bucket = "weak_negative"
	BucketNeutral  Bucket = "neutral"
)

// ClausePrecedence is the bucket order used when scoring a clause:
// negative buckets outrank positive, severity outranks plain, and
// neutral is checked last. The first bucket with a hit wins.
var ClausePrecedence = []Bucket{
	StrongNegative,
	BucketNegative,
	WeakNegative,
	StrongPositive,
	BucketPositive,
	WeakPositive,
	BucketNeutral,
}

// Direction reports the ternary direction a bucket collapses to.
func (b Bucket) Direction() graph.Direction {
	switch b {
	case StrongPositive, BucketPositive, WeakPositive:
		return graph.Positive
	case StrongNegative, BucketNegative, WeakNegative:
		return graph.Negative
	default:
		return graph.Neutral
	}
}

// Event is one economic event class, detected by substring match of
// any keyword. Qualifiers, when present, classify the event's reading
// as strong/weak/mixed from regex indicator lists.
type Event struct {
	ID          string     `yaml:"-"`
	DisplayName string     `yaml:"display_name"`
	Keywords    []string   `yaml:"keywords"`
	Qualifiers  *Qualifier `yaml:"qualifiers,omitempty"`
}

// Qualifier holds the strength indicator patterns for an event.
type Qualifier struct {
	Strong []string `yaml:"strong"`
	Weak   []string `yaml:"weak"`
	Mixed  []string `yaml:"mixed,omitempty"`

	strong []*regexp.Regexp
	weak   []*regexp.Regexp
	mixed  []*regexp.Regexp
}

// Asset is one tradable instrument or market proxy, detected by its
// alias list. Inverse marks volatility-style assets whose inferred
// direction is flipped unless the headline moves them explicitly.
type Asset struct {
	ID          string   `yaml:"-"`
	DisplayName string   `yaml:"display_name"`
	Type        string   `yaml:"type"`
	Keywords    []string `yaml:"keywords"`
	Inverse     bool     `yaml:"inverse,omitempty"`

	// Aliases longest-first so overlapping mentions resolve to the
	// most specific alias.
	patterns []*regexp.Regexp
}

// Mechanism is a transmission-channel node detected by regex patterns.
// IDs carry a "mech:" prefix in the lexicon data.
type Mechanism struct {
	ID       string   `yaml:"-"`
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Patterns []string `yaml:"patterns"`

	compiled []*regexp.Regexp
}

// CausalRule is one causal-language pattern. Higher priority rules are
// tried first; RequiresMovement gates the rule on a movement indicator
// appearing anywhere in the headline.
type CausalRule struct {
	Name             string `yaml:"name"`
	Pattern          string `yaml:"pattern"`
	RequiresMovement bool   `yaml:"requires_movement,omitempty"`
	Priority         int    `yaml:"priority"`

	re *regexp.Regexp
}

// Lexicon is the full vocabulary for one extraction run.
type Lexicon struct {
	Version string

	Events     map[string]*Event
	Assets     map[string]*Asset
	Mechanisms map[string]*Mechanism
	Movement   map[Bucket][]string
	Causal     []*CausalRule

	// FallbackAsset names the catch-all asset credited when a headline
	// carries an event but no asset mention. Empty disables it.
	FallbackAsset string

	eventIDs []string
	assetIDs []string
	mechIDs  []string

	movementPatterns map[Bucket][]*regexp.Regexp
	compiled         bool
}

// keywordRegexp builds the matcher for one asset alias. Single-word
// aliases bind to word boundaries and tolerate a trailing possessive,
// so "dollar" covers "dollars" and "dollar's" but not "marigold".
// Multi-word aliases match as plain substrings.
func keywordRegexp(keyword string) (*regexp.Regexp, error) {
	kw := strings.ToLower(keyword)
	if strings.Contains(kw, " ") {
		return regexp.Compile(regexp.QuoteMeta(kw))
	}
	return regexp.Compile(`\b` + regexp.QuoteMeta(kw) + `'?s?\b`)
}

// indicatorRegexp builds the word-boundary matcher used for movement
// indicators. The s? suffix lets "surge" cover "surges" without
// listing every inflection.
func indicatorRegexp(indicator string) (*regexp.Regexp, error) {
	return regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(indicator)) + `s?\b`)
}

// Compile validates the lexicon and builds every matcher. It must be
// called once before the lexicon is handed to the engine; the returned
// error carries the first offending entry.
func (l *Lexicon) Compile() error {
	if len(l.Events) == 0 {
		return errors.New(errors.LexiconInvalid, "lexicon defines no events")
	}
	if len(l.Assets) == 0 {
		return errors.New(errors.LexiconInvalid, "lexicon defines no assets")
	}

	l.eventIDs = sortedKeys(l.Events)
	l.assetIDs = sortedKeys(l.Assets)
	l.mechIDs = sortedKeys(l.Mechanisms)

	for _, id := range l.eventIDs {
		ev := l.Events[id]
		ev.ID = id
		if len(ev.Keywords) == 0 {
			return errors.Newf(errors.LexiconInvalid, "event %q has no keywords", id)
		}
		if ev.DisplayName == "" {
			ev.DisplayName = titleize(id)
		}
		if ev.Qualifiers != nil {
			if err := ev.Qualifiers.compile(id); err != nil {
				return err
			}
		}
	}

	for _, id := range l.assetIDs {
		a := l.Assets[id]
		a.ID = id
		if len(a.Keywords) == 0 {
			return errors.Newf(errors.LexiconInvalid, "asset %q has no keywords", id)
		}
		if a.DisplayName == "" {
			a.DisplayName = titleize(id)
		}
		if a.Type == "" {
			a.Type = "unknown"
		}
		keywords := append([]string(nil), a.Keywords...)
		sort.SliceStable(keywords, func(i, j int) bool {
			return len(keywords[i]) > len(keywords[j])
		})
		a.patterns = a.patterns[:0]
		for _, kw := range keywords {
			re, err := keywordRegexp(kw)
			if err != nil {
				return errors.Wrap(errors.PatternInvalid, err, "asset "+id+" keyword "+kw)
			}
			a.patterns = append(a.patterns, re)
		}
	}

	for _, id := range l.mechIDs {
		m := l.Mechanisms[id]
		m.ID = id
		if len(m.Patterns) == 0 {
			return errors.Newf(errors.LexiconInvalid, "mechanism %q has no patterns", id)
		}
		m.compiled = m.compiled[:0]
		for _, p := range m.Patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return errors.Wrap(errors.PatternInvalid, err, "mechanism "+id)
			}
			m.compiled = append(m.compiled, re)
		}
	}

	l.movementPatterns = make(map[Bucket][]*regexp.Regexp, len(l.Movement))
	for bucket, indicators := range l.Movement {
		sorted := append([]string(nil), indicators...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return len(sorted[i]) > len(sorted[j])
		})
		for _, ind := range sorted {
			re, err := indicatorRegexp(ind)
			if err != nil {
				return errors.Wrap(errors.PatternInvalid, err, "movement indicator "+ind)
			}
			l.movementPatterns[bucket] = append(l.movementPatterns[bucket], re)
		}
	}

	sort.SliceStable(l.Causal, func(i, j int) bool {
		if l.Causal[i].Priority != l.Causal[j].Priority {
			return l.Causal[i].Priority > l.Causal[j].Priority
		}
		return l.Causal[i].Name < l.Causal[j].Name
	})
	for _, rule := range l.Causal {
		if rule.Name == "" {
			return errors.New(errors.LexiconInvalid, "causal rule without a name")
		}
		re, err := regexp.Compile(`(?i)` + rule.Pattern)
		if err != nil {
			return errors.Wrap(errors.PatternInvalid, err, "causal rule "+rule.Name)
		}
		rule.re = re
	}

	if l.FallbackAsset != "" {
		if _, ok := l.Assets[l.FallbackAsset]; !ok {
			return errors.Newf(errors.UnknownAsset, "fallback asset %q not defined", l.FallbackAsset)
		}
	}

	l.compiled = true
	return nil
}

func (q *Qualifier) compile(eventID string) error {
	var err error
	if q.strong, err = compileAll(q.Strong); err != nil {
		return errors.Wrap(errors.PatternInvalid, err, "event "+eventID+" strong qualifier")
	}
	if q.weak, err = compileAll(q.Weak); err != nil {
		return errors.Wrap(errors.PatternInvalid, err, "event "+eventID+" weak qualifier")
	}
	if q.mixed, err = compileAll(q.Mixed); err != nil {
		return errors.Wrap(errors.PatternInvalid, err, "event "+eventID+" mixed qualifier")
	}
	return nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

// Compiled reports whether Compile has run successfully.
func (l *Lexicon) Compiled() bool { return l.compiled }

// EventIDs returns event ids in sorted order.
func (l *Lexicon) EventIDs() []string { return l.eventIDs }

// AssetIDs returns asset ids in sorted order.
func (l *Lexicon) AssetIDs() []string { return l.assetIDs }

// MechanismIDs returns mechanism ids in sorted order.
func (l *Lexicon) MechanismIDs() []string { return l.mechIDs }

// HasEvent reports whether an event id is defined.
func (l *Lexicon) HasEvent(id string) bool {
	_, ok := l.Events[id]
	return ok
}

// MatchEvent reports whether the lowercase text mentions the event by
// plain substring, the way event vocabularies are written.
func (l *Lexicon) MatchEvent(id, lower string) bool {
	ev, ok := l.Events[id]
	if !ok {
		return false
	}
	for _, kw := range ev.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// MatchAsset reports whether the lowercase text mentions the asset.
func (l *Lexicon) MatchAsset(id, lower string) bool {
	a, ok := l.Assets[id]
	if !ok {
		return false
	}
	for _, re := range a.patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// AssetSpans returns the character spans of every alias mention of the
// asset in the lowercase text.
func (l *Lexicon) AssetSpans(id, lower string) [][2]int {
	a, ok := l.Assets[id]
	if !ok {
		return nil
	}
	var spans [][2]int
	seen := make(map[[2]int]bool)
	for _, re := range a.patterns {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			span := [2]int{loc[0], loc[1]}
			if !seen[span] {
				seen[span] = true
				spans = append(spans, span)
			}
		}
	}
	return spans
}

// MatchMechanism reports whether any of the mechanism's patterns hit.
func (l *Lexicon) MatchMechanism(id, text string) bool {
	m, ok := l.Mechanisms[id]
	if !ok {
		return false
	}
	for _, re := range m.compiled {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// MovementSpan is one movement indicator occurrence in a headline.
type MovementSpan struct {
	Start     int
	End       int
	Indicator string
	Direction graph.Direction
}

// BucketHit reports whether any indicator of the bucket appears in the
// lowercase text.
func (l *Lexicon) BucketHit(b Bucket, lower string) bool {
	for _, re := range l.movementPatterns[b] {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// HasMovement reports whether any movement indicator of any bucket
// appears in the lowercase text.
func (l *Lexicon) HasMovement(lower string) bool {
	for _, b := range ClausePrecedence {
		if l.BucketHit(b, lower) {
			return true
		}
	}
	return false
}

// MovementSpans returns all non-overlapping movement indicator spans
// in the lowercase text. Overlaps resolve to the longest match
// starting earliest.
func (l *Lexicon) MovementSpans(lower string) []MovementSpan {
	var all []MovementSpan
	for _, b := range ClausePrecedence {
		dir := b.Direction()
		for _, re := range l.movementPatterns[b] {
			for _, loc := range re.FindAllStringIndex(lower, -1) {
				all = append(all, MovementSpan{
					Start:     loc[0],
					End:       loc[1],
					Indicator: lower[loc[0]:loc[1]],
					Direction: dir,
				})
			}
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Start != all[j].Start {
			return all[i].Start < all[j].Start
		}
		return (all[i].End - all[i].Start) > (all[j].End - all[j].Start)
	})
	var kept []MovementSpan
	lastEnd := -1
	for _, m := range all {
		if m.Start >= lastEnd {
			kept = append(kept, m)
			lastEnd = m.End
		}
	}
	return kept
}

// Match reports whether the rule's pattern hits the text.
func (r *CausalRule) Match(text string) bool {
	return r.re != nil && r.re.MatchString(text)
}

// Rules returns the causal rules in evaluation order: priority
// descending, name ascending within a priority.
func (l *Lexicon) Rules() []*CausalRule { return l.Causal }

// Strength classifies an event reading as "strong", "weak" or "mixed"
// from the event's qualifier patterns; empty when the event has no
// qualifiers or nothing matches. A text hitting both strong and weak
// indicators reads as mixed.
func (l *Lexicon) Strength(eventID, lower string) string {
	ev, ok := l.Events[eventID]
	if !ok || ev.Qualifiers == nil {
		return ""
	}
	strong := anyMatch(ev.Qualifiers.strong, lower)
	weak := anyMatch(ev.Qualifiers.weak, lower)
	switch {
	case strong && weak:
		return "mixed"
	case strong:
		return "strong"
	case weak:
		return "weak"
	case anyMatch(ev.Qualifiers.mixed, lower):
		return "mixed"
	}
	return ""
}

func anyMatch(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func titleize(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
