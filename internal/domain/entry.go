package domain

// properNounTags are the JMnedict name-type tags that mark an entry as a
// proper name rather than a dictionary word. Entries carrying any of these
// are demoted below all ordinary results during ranking.
var properNounTags = map[string]struct{}{
	"n-pr": {}, "fem": {}, "masc": {}, "given": {}, "surname": {},
	"person": {}, "char": {}, "place": {}, "station": {}, "company": {},
	"organization": {}, "group": {}, "product": {}, "serv": {}, "work": {},
	"ev": {}, "obj": {}, "creat": {}, "dei": {}, "myth": {}, "leg": {},
	"ship": {}, "doc": {}, "relig": {}, "fict": {}, "oth": {}, "unclass": {},
}

// conjugatableTags are POS tags of entries that can actually conjugate.
// A deinflected base form is only promoted in ranking when the matching
// entry carries one of these.
var conjugatableTags = map[string]struct{}{
	"v1": {}, "v5u": {}, "v5k": {}, "v5g": {}, "v5s": {}, "v5t": {},
	"v5n": {}, "v5b": {}, "v5m": {}, "v5r": {}, "v5k-s": {}, "v5u-s": {},
	"v5aru": {}, "vs": {}, "vs-i": {}, "vs-s": {}, "vk": {}, "vi": {},
	"vt": {}, "vz": {}, "adj-i": {}, "adj-ix": {}, "aux-v": {}, "aux-adj": {},
}

// Entry is a dictionary entry returned by the lexicon and annotated by the
// search pipeline. The core only reads lexicon-owned fields and writes the
// annotation fields (IsDeinflectedValidConjugation, WordOrder).
type Entry struct {
	ID            int64
	Kanji         string
	Reading       string
	Meanings      []string
	PartsOfSpeech []string
	Tags          []string
	IsCommon      bool
	Frequency     int
	IsNameEntry   bool

	// IsDeinflectedValidConjugation marks entries whose headword equals a
	// tokenizer-confirmed deinflection base form.
	IsDeinflectedValidConjugation bool

	// WordOrder is the source position of the sub-query that produced this
	// entry (sentence and multi-word searches); 0 otherwise.
	WordOrder int
}

// Headword returns the display form: kanji when present, reading otherwise.
func (e *Entry) Headword() string {
	if e.Kanji != "" {
		return e.Kanji
	}
	return e.Reading
}

// IsProperNoun reports whether the entry denotes a name. Either the explicit
// JMnedict flag or any name-type tag qualifies.
func (e *Entry) IsProperNoun() bool {
	if e.IsNameEntry {
		return true
	}
	for _, t := range e.PartsOfSpeech {
		if _, ok := properNounTags[t]; ok {
			return true
		}
	}
	for _, t := range e.Tags {
		if _, ok := properNounTags[t]; ok {
			return true
		}
	}
	return false
}

// IsConjugatable reports whether the entry carries a verb/adjective/auxiliary
// POS tag, i.e. a surface form of it could have been conjugated.
func (e *Entry) IsConjugatable() bool {
	for _, t := range e.PartsOfSpeech {
		if _, ok := conjugatableTags[t]; ok {
			return true
		}
	}
	return false
}

// Key identifies an entry for deduplication: (kanji, reading), kanji possibly
// empty. First occurrence wins.
func (e *Entry) Key() string {
	return e.Kanji + "\x00" + e.Reading
}

// KanjiEntry is a single character from the kanji character index, returned
// by the single-kanji fallback search.
type KanjiEntry struct {
	Literal      string
	Meanings     []string
	OnReadings   []string
	KunReadings  []string
	StrokeCount  int
	Grade        int
	JLPTLevel    int
	Frequency    int
	HeisigNumber int
}

// EnrichedEntry is an Entry with display-ready tag labels attached by the
// tag enrichment service after ranking.
type EnrichedEntry struct {
	Entry
	TagLabels []string
}
