// Package lang provides script classification and kana conversion for raw
// query text. All functions are pure and safe for concurrent use.
package lang

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Unicode block bounds used for script detection.
const (
	hiraganaLo = 0x3040
	hiraganaHi = 0x309F
	katakanaLo = 0x30A0
	katakanaHi = 0x30FF
	cjkLo      = 0x4E00
	cjkHi      = 0x9FAF
)

// particles that never end a conjugated form. A query ending in one of these
// is excluded from deinflection outright.
var particles = map[string]struct{}{
	"は": {}, "が": {}, "を": {}, "に": {}, "へ": {}, "で": {}, "と": {},
	"の": {}, "も": {}, "や": {}, "か": {}, "ね": {}, "よ": {}, "ぞ": {},
	"ぜ": {}, "さ": {}, "わ": {}, "から": {}, "まで": {}, "より": {},
	"だけ": {}, "ほど": {}, "くらい": {}, "など": {}, "ばかり": {},
}

// commonEnglishWords that also happen to match romaji patterns. These are
// rejected by the romaji heuristic before any pattern matching runs.
var commonEnglishWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "i": {}, "is": {}, "it": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "of": {}, "or": {}, "and": {}, "as": {},
	"be": {}, "by": {}, "do": {}, "go": {}, "he": {}, "if": {}, "me": {},
	"my": {}, "no": {}, "so": {}, "up": {}, "us": {}, "we": {}, "you": {},
	"are": {}, "was": {}, "has": {}, "had": {}, "his": {}, "her": {},
	"him": {}, "she": {}, "not": {}, "but": {}, "for": {}, "can": {},
	"all": {}, "any": {}, "get": {}, "out": {}, "one": {}, "two": {},
	"who": {}, "how": {}, "now": {}, "new": {}, "see": {}, "say": {},
	"man": {}, "men": {}, "may": {}, "use": {}, "name": {}, "data": {},
	"make": {}, "area": {}, "more": {},
}

// romajiPatterns are characteristic of Hepburn-romanized Japanese. Matching
// any one of them (after the denylist and consonant-cluster gates) accepts
// the input as likely romaji.
var romajiPatterns = []*regexp.Regexp{
	// double-vowel runs: aa, ii, uu, ee, oo, ou
	regexp.MustCompile(`(?i)(aa|ii|uu|ee|oo|ou)`),
	// digraphs typical of romanization
	regexp.MustCompile(`(?i)(sh|ch|ts|ky|gy|ny|hy|by|py|my|ry|ja|ju|jo)`),
	// polite endings
	regexp.MustCompile(`(?i)(masu|mashita|masen|desu|deshita)$`),
	// strict consonant-vowel alternation over the whole string
	regexp.MustCompile(`(?i)^([kstnhfmyrwgzdbpj]?[aiueo])+n?$`),
}

// consonantClusterRE matches 2+ consonants in a row, excluding the clusters
// that are legitimate romaji digraphs.
var consonantClusterRE = regexp.MustCompile(`(?i)[bcdfghjklmnpqrstvwxz]{2,}`)

var romajiDigraphs = []string{"sh", "ch", "ts", "ky", "gy", "ny", "hy", "by", "py", "my", "ry", "nn"}

// NormalizeQuery prepares raw input for classification: folds full-width
// Latin and digits to ASCII, converts ideographic spaces, and trims.
func NormalizeQuery(s string) string {
	s = width.Fold.String(s)
	s = strings.ReplaceAll(s, "　", " ")
	return strings.TrimSpace(s)
}

// IsJapanese reports whether the text contains at least one character in the
// Hiragana, Katakana, or CJK unified ideograph ranges.
func IsJapanese(s string) bool {
	for _, r := range s {
		if isJapaneseRune(r) {
			return true
		}
	}
	return false
}

// IsPureJapanese reports whether every non-space, non-wildcard character is
// Japanese (including the prolonged sound mark and iteration marks).
func IsPureJapanese(s string) bool {
	seen := false
	for _, r := range s {
		if r == ' ' || r == '?' {
			continue
		}
		if !isJapaneseRune(r) && r != 'ー' && r != '々' && r != 'ゝ' && r != 'ヽ' {
			return false
		}
		seen = true
	}
	return seen
}

// ContainsRomaji reports whether the text contains any Latin letter.
func ContainsRomaji(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// IsMixedScript reports whether the text mixes Japanese characters with
// Latin letters.
func IsMixedScript(s string) bool {
	return IsJapanese(s) && ContainsRomaji(s)
}

// IsWildcardPattern reports whether the text is a valid wildcard query:
// it contains at least one '?' and the non-wildcard remainder is Japanese.
// Wildcards over non-Japanese text are invalid (the search returns empty
// for them rather than erroring).
func IsWildcardPattern(s string) bool {
	if !strings.Contains(s, "?") {
		return false
	}
	rest := strings.ReplaceAll(s, "?", "")
	return rest != "" && IsPureJapanese(rest)
}

// IsEnglish reports whether the text looks like plain English: Latin letters
// (with spaces, hyphens, apostrophes) and no Japanese characters.
func IsEnglish(s string) bool {
	if s == "" || IsJapanese(s) {
		return false
	}
	hasLetter := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			hasLetter = true
		case r == ' ' || r == '-' || r == '\'' || unicode.IsDigit(r):
		default:
			return false
		}
	}
	return hasLetter
}

// IsLikelyJapaneseRomaji is a best-effort heuristic gate, not a classifier
// with guaranteed correctness. Known English words are rejected outright;
// short inputs with consonant clusters are rejected even when a vowel-heavy
// pattern also matches; otherwise any characteristic romanization pattern
// accepts. False positives and negatives are expected; the unified fallback
// strategy still finds results for misclassified input.
func IsLikelyJapaneseRomaji(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" || !ContainsRomaji(t) || IsJapanese(t) {
		return false
	}
	if _, ok := commonEnglishWords[t]; ok {
		return false
	}
	if len(t) <= 3 && hasEnglishCluster(t) {
		return false
	}
	for _, re := range romajiPatterns {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

// hasEnglishCluster reports a 2+ consonant run that is not a romaji digraph.
func hasEnglishCluster(t string) bool {
	cluster := consonantClusterRE.FindString(t)
	if cluster == "" {
		return false
	}
	for _, d := range romajiDigraphs {
		if strings.Contains(strings.ToLower(cluster), d) {
			return false
		}
	}
	return true
}

// EndsInParticle reports whether the text ends in a grammatical particle
// without being one itself.
func EndsInParticle(s string) bool {
	for p := range particles {
		if s != p && strings.HasSuffix(s, p) {
			return true
		}
	}
	return false
}

// IsParticle reports whether the text is exactly a particle.
func IsParticle(s string) bool {
	_, ok := particles[s]
	return ok
}

// ContainsParticle reports whether any particle occurs anywhere in the text.
// Used by the sentence heuristic.
func ContainsParticle(s string) bool {
	for p := range particles {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func isJapaneseRune(r rune) bool {
	return r >= hiraganaLo && r <= hiraganaHi ||
		r >= katakanaLo && r <= katakanaHi ||
		r >= cjkLo && r <= cjkHi
}

// RunKind labels a run of same-script characters.
type RunKind int

const (
	RunOther RunKind = iota
	RunKanji
	RunKana
	RunLatin
)

// ScriptRun is a maximal substring of a single script type.
type ScriptRun struct {
	Text string
	Kind RunKind
}

// SplitScriptRuns tokenizes text into runs of a single script type. Spaces
// and punctuation break runs and are dropped.
func SplitScriptRuns(s string) []ScriptRun {
	var runs []ScriptRun
	var cur strings.Builder
	curKind := RunOther

	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, ScriptRun{Text: cur.String(), Kind: curKind})
			cur.Reset()
		}
	}

	for _, r := range s {
		k := runeKind(r)
		if k == RunOther {
			flush()
			curKind = RunOther
			continue
		}
		if k != curKind {
			flush()
			curKind = k
		}
		cur.WriteRune(r)
	}
	flush()
	return runs
}

func runeKind(r rune) RunKind {
	switch {
	case r >= cjkLo && r <= cjkHi || r == '々':
		return RunKanji
	case r >= hiraganaLo && r <= hiraganaHi || r >= katakanaLo && r <= katakanaHi || r == 'ー':
		return RunKana
	case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		return RunLatin
	default:
		return RunOther
	}
}
