package domain

// Token is a morpheme produced by the external tokenizer, mapped into the
// abstract POS vocabulary by the tokenizer adapter.
type Token struct {
	Surface   string
	BaseForm  string
	Reading   string
	POSLevel1 string
	POSLevel2 string
	Category  PartOfSpeechCategory
}

// IsInflected reports whether the tokenizer saw a real inflection: the token
// is a verb or adjective whose reported base form differs from its surface.
func (t Token) IsInflected() bool {
	if t.Category != POSVerb && t.Category != POSAdjective {
		return false
	}
	return t.BaseForm != "" && t.BaseForm != t.Surface
}

// MorphologyResult is the tokenizer's analysis of a single word.
type MorphologyResult struct {
	Surface  string
	BaseForm string
	Reading  string
	Category PartOfSpeechCategory
}
