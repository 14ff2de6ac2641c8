package domain

// JapaneseSearch defines parameters for a Japanese headword lookup.
type JapaneseSearch struct {
	// Text is the kanji/kana form to match.
	Text string
	// Limit is the maximum number of entries to return.
	Limit int
	// ExactMatch restricts matching to exact kanji/reading equality
	// instead of full-text matching.
	ExactMatch bool
	// Deinflected marks this query as produced by the deinflection engine;
	// matching entries are annotated as valid conjugations when their
	// headword equals BaseForm.
	Deinflected bool
	// BaseForm is the deinflected dictionary form when Deinflected is set.
	BaseForm string
}
