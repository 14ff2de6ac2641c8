package domain

// ScriptKind classifies a query by the writing system(s) it uses.
// Produced once per query and matched exhaustively by the search dispatcher.
type ScriptKind string

const (
	// ScriptMultiWord is a whitespace-separated query; each word is
	// classified and searched independently.
	ScriptMultiWord ScriptKind = "MULTI_WORD"
	// ScriptWildcard contains '?' placeholders over Japanese text.
	ScriptWildcard ScriptKind = "WILDCARD"
	// ScriptInvalidWildcard contains '?' placeholders over non-Japanese text.
	// Always yields an empty result.
	ScriptInvalidWildcard ScriptKind = "INVALID_WILDCARD"
	// ScriptMixed mixes Japanese characters with Latin letters.
	ScriptMixed ScriptKind = "MIXED"
	// ScriptRomaji is Latin text judged likely to be romanized Japanese.
	ScriptRomaji ScriptKind = "ROMAJI"
	// ScriptJapanese is pure Japanese text (kanji and/or kana).
	ScriptJapanese ScriptKind = "JAPANESE"
	// ScriptEnglish is Latin text judged to be English.
	ScriptEnglish ScriptKind = "ENGLISH"
	// ScriptAmbiguous could not be classified; searched as both
	// Japanese and English.
	ScriptAmbiguous ScriptKind = "AMBIGUOUS"
)

func (k ScriptKind) String() string { return string(k) }

func (k ScriptKind) IsValid() bool {
	switch k {
	case ScriptMultiWord, ScriptWildcard, ScriptInvalidWildcard, ScriptMixed,
		ScriptRomaji, ScriptJapanese, ScriptEnglish, ScriptAmbiguous:
		return true
	}
	return false
}

// PartOfSpeechCategory is the abstract grammatical category the tokenizer
// adapter maps its own label vocabulary into. Core validation logic depends
// only on these values, never on tokenizer-specific strings.
type PartOfSpeechCategory string

const (
	POSVerb      PartOfSpeechCategory = "VERB"
	POSAdjective PartOfSpeechCategory = "ADJECTIVE"
	POSNoun      PartOfSpeechCategory = "NOUN"
	POSAdverb    PartOfSpeechCategory = "ADVERB"
	POSAdnominal PartOfSpeechCategory = "ADNOMINAL"
	POSParticle  PartOfSpeechCategory = "PARTICLE"
	POSAuxiliary PartOfSpeechCategory = "AUXILIARY"
	POSSymbol    PartOfSpeechCategory = "SYMBOL"
	POSUnknown   PartOfSpeechCategory = "UNKNOWN"
	POSOther     PartOfSpeechCategory = "OTHER"
)

func (p PartOfSpeechCategory) String() string { return string(p) }

func (p PartOfSpeechCategory) IsValid() bool {
	switch p {
	case POSVerb, POSAdjective, POSNoun, POSAdverb, POSAdnominal,
		POSParticle, POSAuxiliary, POSSymbol, POSUnknown, POSOther:
		return true
	}
	return false
}

// IsContentWord reports whether the category carries lexical meaning worth
// searching on its own (used by the sentence analyzer).
func (p PartOfSpeechCategory) IsContentWord() bool {
	switch p {
	case POSNoun, POSVerb, POSAdjective, POSAdverb, POSAdnominal:
		return true
	}
	return false
}

// VerbType identifies the conjugation class a deinflection rule belongs to.
type VerbType string

const (
	VerbTypeNone       VerbType = "NONE"
	VerbTypeIchidan    VerbType = "ICHIDAN"
	VerbTypeGodanU     VerbType = "GODAN_U"
	VerbTypeGodanKu    VerbType = "GODAN_KU"
	VerbTypeGodanGu    VerbType = "GODAN_GU"
	VerbTypeGodanSu    VerbType = "GODAN_SU"
	VerbTypeGodanTsu   VerbType = "GODAN_TSU"
	VerbTypeGodanNu    VerbType = "GODAN_NU"
	VerbTypeGodanBu    VerbType = "GODAN_BU"
	VerbTypeGodanMu    VerbType = "GODAN_MU"
	VerbTypeGodanRu    VerbType = "GODAN_RU"
	VerbTypeSuru       VerbType = "SURU"
	VerbTypeKuru       VerbType = "KURU"
	VerbTypeIku        VerbType = "IKU"
	VerbTypeIAdjective VerbType = "I_ADJECTIVE"
	VerbTypeCopula     VerbType = "COPULA"
)

func (v VerbType) String() string { return string(v) }

func (v VerbType) IsValid() bool {
	switch v {
	case VerbTypeNone, VerbTypeIchidan, VerbTypeGodanU, VerbTypeGodanKu,
		VerbTypeGodanGu, VerbTypeGodanSu, VerbTypeGodanTsu, VerbTypeGodanNu,
		VerbTypeGodanBu, VerbTypeGodanMu, VerbTypeGodanRu, VerbTypeSuru,
		VerbTypeKuru, VerbTypeIku, VerbTypeIAdjective, VerbTypeCopula:
		return true
	}
	return false
}

// IsGodan reports whether the type is one of the godan conjugation classes.
func (v VerbType) IsGodan() bool {
	switch v {
	case VerbTypeGodanU, VerbTypeGodanKu, VerbTypeGodanGu, VerbTypeGodanSu,
		VerbTypeGodanTsu, VerbTypeGodanNu, VerbTypeGodanBu, VerbTypeGodanMu,
		VerbTypeGodanRu:
		return true
	}
	return false
}
