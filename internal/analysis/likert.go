package analysis

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"surveyscope/domain/survey"
	"surveyscope/ports"
)

// MappingConverter scores responses through a configured mapping table.
// Lookup is exact on the normalized text first, then a case-insensitive
// scan over the normalized keys. A mapped nil score is the explicit
// "no score" marker and converts to NaN like an unmapped response does.
type MappingConverter struct {
	exact map[string]*float64
	keys  []string // normalized keys in deterministic scan order
}

// NewMappingConverter normalizes all mapping keys once up front.
func NewMappingConverter(mapping survey.LikertMapping) *MappingConverter {
	c := &MappingConverter{exact: make(map[string]*float64, len(mapping))}
	for key, score := range mapping {
		norm := survey.Sanitize(key)
		if _, ok := c.exact[norm]; !ok {
			c.keys = append(c.keys, norm)
		}
		c.exact[norm] = score
	}
	// Map iteration order is random; fix the fallback scan order.
	sort.Strings(c.keys)
	return c
}

func (c *MappingConverter) Name() string { return "likert_mapping" }

// Convert implements ports.LikertConverter.
func (c *MappingConverter) Convert(raw string, present bool) float64 {
	if !present {
		return math.NaN()
	}
	norm := survey.Sanitize(raw)

	if score, ok := c.exact[norm]; ok {
		return deref(score)
	}
	for _, key := range c.keys {
		if strings.EqualFold(norm, key) {
			return deref(c.exact[key])
		}
	}
	return math.NaN()
}

func deref(score *float64) float64 {
	if score == nil {
		return math.NaN()
	}
	return *score
}

// trailingScoreRe matches a parenthetical numeric score at the end of a
// response, e.g. "Strongly Agree (1)" or "Disagree (-2)".
var trailingScoreRe = regexp.MustCompile(`\((-?\d+(?:\.\d+)?)\)\s*$`)

// EmbeddedScoreConverter parses the trailing parenthetical score some form
// exports embed in the response text. It is the fallback strategy used only
// when no mapping table is configured.
type EmbeddedScoreConverter struct{}

func NewEmbeddedScoreConverter() *EmbeddedScoreConverter { return &EmbeddedScoreConverter{} }

func (c *EmbeddedScoreConverter) Name() string { return "embedded_score" }

// Convert implements ports.LikertConverter.
func (c *EmbeddedScoreConverter) Convert(raw string, present bool) float64 {
	if !present {
		return math.NaN()
	}
	m := trailingScoreRe.FindStringSubmatch(survey.Sanitize(raw))
	if m == nil {
		return math.NaN()
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return math.NaN()
	}
	return score
}

// SelectConverter picks the active strategy for a run: the mapping table
// when configured, the embedded-score parser otherwise. Never both.
func SelectConverter(mapping survey.LikertMapping) ports.LikertConverter {
	if len(mapping) > 0 {
		return NewMappingConverter(mapping)
	}
	return NewEmbeddedScoreConverter()
}

// ConvertColumns applies the converter column-wise to every matched
// question, producing score columns parallel to the table rows. Original
// text columns are left untouched.
func ConvertColumns(table *survey.Table, matched survey.MatchedSchema, conv ports.LikertConverter) survey.ScoreSet {
	scores := make(survey.ScoreSet)
	for _, cat := range matched.Categories {
		for _, col := range cat.Columns {
			if _, done := scores[col]; done {
				continue
			}
			orig := matched.ColumnsByNorm[col]
			column := make([]float64, len(table.Rows))
			for i := range table.Rows {
				raw, present := table.Cell(i, orig)
				column[i] = conv.Convert(raw, present)
			}
			scores[col] = column
		}
	}
	return scores
}
