package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/jdict-engine/internal/domain"
	"github.com/heartmarshall/jdict-engine/internal/lang"
)

// rankContext carries what the final sort needs to know about how the
// entries were obtained.
type rankContext struct {
	// query is the normalized search text.
	query string
	// meaningQuery marks English-style queries where meaning position
	// matters more than headword matching.
	meaningQuery bool
	// baseForms holds deinflected bases confirmed against the lexicon.
	baseForms map[string]struct{}
	// kanaForms holds kana conversions of a romaji query; any of them
	// counts as an exact headword match.
	kanaForms []string
}

// Meaning-position scoring. Tier measures how the query matches a meaning,
// position rewards earlier meanings. The weights deliberately let a weaker
// tier at meaning #1 beat a stronger tier buried at meaning #5.
const (
	meaningTierExact     = 0 // meaning equals the query
	meaningTierWord      = 1 // query is a whole word of the meaning
	meaningTierPhrase    = 2 // most words of a multi-word query appear
	meaningTierSubstring = 3 // query is a substring only
	meaningTierNone      = 4

	meaningTierWeight = 4
	meaningPosWeight  = 3
	meaningPosMax     = 8
	meaningBase       = (meaningTierNone * meaningTierWeight) + (meaningPosMax * meaningPosWeight)
)

// rank merges, deduplicates, and orders raw strategy output. The input
// slice is not reused after the call.
func rank(entries []domain.Entry, rc rankContext) []domain.Entry {
	entries = dedupe(entries)
	entries = collapseKatakanaDuplicates(entries)

	type scored struct {
		entry domain.Entry
		keys  [7]int
	}
	items := make([]scored, len(entries))
	for i, entry := range entries {
		items[i] = scored{entry: entry, keys: rankKeys(entry, rc)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		// WordOrder groups multi-word results; zero means single-term.
		if items[i].entry.WordOrder != items[j].entry.WordOrder {
			return items[i].entry.WordOrder < items[j].entry.WordOrder
		}
		for k := range items[i].keys {
			if items[i].keys[k] != items[j].keys[k] {
				return items[i].keys[k] > items[j].keys[k]
			}
		}
		return false
	})

	out := make([]domain.Entry, len(items))
	for i, it := range items {
		out[i] = it.entry
	}
	return out
}

// rankKeys computes the descending sort keys for one entry. Earlier keys
// dominate later ones.
func rankKeys(entry domain.Entry, rc rankContext) [7]int {
	var k [7]int

	// names sink below ordinary vocabulary
	if !entry.IsProperNoun() {
		k[0] = 1
	}

	if entry.IsDeinflectedValidConjugation && entry.IsConjugatable() {
		k[1] = 1
	}

	if isExactMatch(entry, rc) {
		k[2] = 1
	}

	if rc.meaningQuery {
		k[3] = meaningScore(entry.Meanings, rc.query)
	}

	if entry.IsCommon {
		k[4] = 1
	}

	k[5] = entry.Frequency

	// shorter readings first: negate so the descending comparison holds
	k[6] = -utf8.RuneCountInString(entry.Reading)

	return k
}

func isExactMatch(entry domain.Entry, rc rankContext) bool {
	if entry.Kanji == rc.query || entry.Reading == rc.query {
		return true
	}
	if _, ok := rc.baseForms[entry.Kanji]; ok {
		return true
	}
	if _, ok := rc.baseForms[entry.Reading]; ok {
		return true
	}
	for _, kana := range rc.kanaForms {
		if entry.Kanji == kana || entry.Reading == kana {
			return true
		}
	}
	return false
}

// meaningScore scores how prominently the query appears among an entry's
// meanings. Higher is better; zero means no meaning mentions the query.
func meaningScore(meanings []string, query string) int {
	q := strings.ToLower(query)
	qWords := strings.Fields(q)

	best := 0
	for i, meaning := range meanings {
		tier := meaningTier(strings.ToLower(meaning), q, qWords)
		if tier == meaningTierNone {
			continue
		}
		pos := i
		if pos > meaningPosMax {
			pos = meaningPosMax
		}
		score := meaningBase - tier*meaningTierWeight - pos*meaningPosWeight
		if score > best {
			best = score
		}
	}
	return best
}

func meaningTier(meaning, q string, qWords []string) int {
	if meaning == q {
		return meaningTierExact
	}
	for _, w := range strings.FieldsFunc(meaning, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '\'' || r == '-')
	}) {
		if w == q {
			return meaningTierWord
		}
	}
	if len(qWords) > 1 {
		hits := 0
		for _, w := range qWords {
			if strings.Contains(meaning, w) {
				hits++
			}
		}
		if hits*10 >= len(qWords)*7 {
			return meaningTierPhrase
		}
	}
	if strings.Contains(meaning, q) {
		return meaningTierSubstring
	}
	return meaningTierNone
}

// dedupe drops repeated (kanji, reading) pairs, keeping the first
// occurrence so strategy insertion order breaks ties.
func dedupe(entries []domain.Entry) []domain.Entry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, entry := range entries {
		key := entry.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// collapseKatakanaDuplicates removes entries that differ from an already
// seen one only by the kana script of the reading, e.g. a katakana spelling
// of a word whose hiragana reading is present under the same headword. The
// katakana variant is always the one dropped, whichever arrives first.
func collapseKatakanaDuplicates(entries []domain.Entry) []domain.Entry {
	seen := make(map[string]int, len(entries))
	out := entries[:0]
	for _, entry := range entries {
		key := entry.Kanji + "\x00" + lang.KatakanaToHiragana(entry.Reading)
		if i, dup := seen[key]; dup {
			if lang.IsKatakana(out[i].Reading) && !lang.IsKatakana(entry.Reading) {
				out[i] = entry
			}
			continue
		}
		seen[key] = len(out)
		out = append(out, entry)
	}
	return out
}
