package domain

// Classification is the derived shape of a raw query, produced once by the
// classifier and matched exhaustively by the search dispatcher.
type Classification struct {
	// Kind is the closed script classification.
	Kind ScriptKind

	// HasWildcard is true when the raw query contains '?' placeholders,
	// regardless of whether the wildcard usage is valid.
	HasWildcard bool

	// Words holds the whitespace-split tokens when Kind is ScriptMultiWord.
	Words []string
}
