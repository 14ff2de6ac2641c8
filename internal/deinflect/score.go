package deinflect

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// scoreWeights is the tunable weight table for candidate scoring. The exact
// values are heuristic; tests assert relative ordering only.
var scoreWeights = struct {
	// DictionaryEnding rewards a base form ending in the dictionary-form
	// kana for its verb type (る for ichidan, the う-row for godan, い for
	// i-adjectives).
	DictionaryEnding int
	// VerbType rewards candidates with a recognized conjugation class.
	VerbType int
	// RuleWeight scales the matched rule's own confidence weight.
	RuleWeight int
	// LengthPenalty is subtracted per rune of the base form; dictionary
	// forms are typically short.
	LengthPenalty int
	// Junk is subtracted for reconstructions with impossible endings
	// (まする, ましる, or a base form still ending in ます).
	Junk int
	// Identity is subtracted when no real transformation occurred.
	Identity int
}{
	DictionaryEnding: 50,
	VerbType:         20,
	RuleWeight:       3,
	LengthPenalty:    2,
	Junk:             200,
	Identity:         80,
}

// junkEndings are suffixes no real dictionary form ends in. They appear when
// a polite-form rule fires on the wrong stem boundary.
var junkEndings = []string{"まする", "ましる", "ます", "ませる"}

func scoreCandidate(c domain.Deinflection) int {
	s := 0

	if end, ok := dictionaryEndings[c.VerbType]; ok && strings.HasSuffix(c.BaseForm, end) {
		s += scoreWeights.DictionaryEnding
	}
	if c.VerbType != domain.VerbTypeNone && c.VerbType != "" {
		s += scoreWeights.VerbType
	}
	for _, t := range c.Transformations {
		s += ruleWeight(t.RuleID) * scoreWeights.RuleWeight
	}
	s -= utf8.RuneCountInString(c.BaseForm) * scoreWeights.LengthPenalty

	for _, junk := range junkEndings {
		if strings.HasSuffix(c.BaseForm, junk) {
			s -= scoreWeights.Junk
			break
		}
	}
	if c.BaseForm == c.OriginalForm {
		s -= scoreWeights.Identity
	}
	return s
}

// ruleWeight finds the confidence weight of a rule by ID. Irregular and
// regular tables are both consulted; unknown IDs weigh zero.
func ruleWeight(ruleID string) int {
	for _, r := range irregularSuffixes {
		if r.RuleID == ruleID {
			return r.Weight
		}
	}
	for _, r := range rules {
		if r.RuleID == ruleID {
			return r.Weight
		}
	}
	return 0
}
