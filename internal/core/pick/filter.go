package pick

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Option is one entry of a flat autocomplete list.
type Option struct {
	Value     string `json:"value" yaml:"value"`
	Label     string `json:"label" yaml:"label"`
	Secondary string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Disabled  bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// FilterConfig bundles tuning parameters for the fuzzy fallback.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// DefaultFilterConfig keeps the fuzzy fallback strict enough for short
// option lists.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{MinCoverage: 0.6, MaxSpread: 40, MaxResults: 200}
}

// FilterOptions returns the indices of options matching query. The query is
// trimmed and lowercased and tested as a substring of label and secondary
// text; when nothing matches, a fuzzy search takes over.
func FilterOptions(options []Option, query string, cfg FilterConfig) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = len(options)
	}
	base := make([]string, len(options))
	for i, o := range options {
		base[i] = strings.ToLower(o.Label + "  " + o.Secondary)
	}
	if q == "" {
		idx := make([]int, 0, min(len(options), cfg.MaxResults))
		for i := range options {
			if len(idx) >= cfg.MaxResults {
				break
			}
			idx = append(idx, i)
		}
		return idx
	}
	if sub := filterBySubstring(q, base, cfg); len(sub) > 0 {
		return sub
	}
	return filterByFuzzy(q, base, cfg)
}

func filterBySubstring(q string, base []string, cfg FilterConfig) []int {
	sub := make([]int, 0, min(cfg.MaxResults, len(base)))
	for i, b := range base {
		if strings.Contains(b, q) {
			sub = append(sub, i)
			if len(sub) >= cfg.MaxResults {
				break
			}
		}
	}
	return sub
}

// filterByFuzzy prunes fuzzy matches by coverage and spread; if pruning
// leaves nothing, the best raw matches are returned instead.
func filterByFuzzy(q string, base []string, cfg FilterConfig) []int {
	matches := fuzzy.Find(q, base)

	pruned := make([]int, 0, len(matches))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		pruned = append(pruned, mt.Index)
		if len(pruned) >= cfg.MaxResults {
			break
		}
	}
	if len(pruned) == 0 {
		for i := 0; i < len(matches) && i < cfg.MaxResults; i++ {
			pruned = append(pruned, matches[i].Index)
		}
	}
	return pruned
}

func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}

// FilterStrings is FilterOptions for plain string lists such as tag options.
func FilterStrings(values []string, query string, cfg FilterConfig) []int {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v, Label: v}
	}
	return FilterOptions(opts, query, cfg)
}
