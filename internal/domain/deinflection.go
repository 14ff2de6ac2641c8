package domain

// Transformation records one rule application in a deinflection chain.
type Transformation struct {
	From   string
	To     string
	Reason string
	RuleID string
}

// Deinflection is the result of reducing a conjugated surface form to its
// dictionary form. Immutable once created; cached keyed by OriginalForm.
type Deinflection struct {
	OriginalForm    string
	BaseForm        string
	ReasonChain     []string
	VerbType        VerbType
	Transformations []Transformation
}

// ConjugationRule matches a conjugated ending and describes how to rebuild
// the dictionary form. The rule table is ordered by ending length so that
// the most specific ending wins (e.g. ませんでした before ません).
type ConjugationRule struct {
	// Ending is the conjugated suffix to strip from the surface form.
	Ending string
	// Base is the dictionary-form suffix appended after stripping.
	Base string
	// VerbType is the conjugation class this rule applies to.
	VerbType VerbType
	// Reason is the human-readable transformation label.
	Reason string
	// RuleID identifies the rule for Transformation records and tie-breaks.
	RuleID string
	// Weight contributes to candidate confidence when several rules match.
	Weight int
}
