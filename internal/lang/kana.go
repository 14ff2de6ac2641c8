package lang

import "strings"

// romajiToHiragana maps Hepburn romaji to hiragana. Multi-letter keys are
// tried longest-first so しゃ ("sha") wins over さ ("sa") + "ha".
var romajiToHiragana = map[string]string{
	// yōon (3 letters)
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ", "shi": "し",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ", "chi": "ち",
	"tsu": "つ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"dya": "ぢゃ", "dyu": "ぢゅ", "dyo": "ぢょ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",

	// two-letter syllables
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"sa": "さ", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"za": "ざ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"ja": "じゃ", "ji": "じ", "ju": "じゅ", "je": "じぇ", "jo": "じょ",
	"ta": "た", "ti": "ち", "tu": "つ", "te": "て", "to": "と",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"ha": "は", "hi": "ひ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"fu": "ふ", "fa": "ふぁ", "fi": "ふぃ", "fe": "ふぇ", "fo": "ふぉ",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"wa": "わ", "wi": "ゐ", "we": "ゑ", "wo": "を",
	"vu": "ゔ", "va": "ゔぁ", "vi": "ゔぃ", "ve": "ゔぇ", "vo": "ゔぉ",
	"nn": "ん",

	// single vowels
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"n": "ん",
}

// vowels for sokuon detection.
func isVowel(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

func isRomajiConsonant(b byte) bool {
	return b >= 'a' && b <= 'z' && !isVowel(b) && b != 'n'
}

// ToHiragana transliterates Hepburn romaji to hiragana. Characters that
// cannot be converted pass through unchanged. Double consonants produce っ;
// a trailing or pre-consonant "n" produces ん.
func ToHiragana(romaji string) string {
	s := strings.ToLower(romaji)
	var b strings.Builder
	i := 0
	for i < len(s) {
		// sokuon: doubled consonant (kka → っか), but not "nn" which is ん.
		if i+1 < len(s) && s[i] == s[i+1] && isRomajiConsonant(s[i]) {
			b.WriteString("っ")
			i++
			continue
		}
		// "n" before a consonant (except y) closes the syllable as ん.
		// The following consonant includes 'n' itself: "onna" → おんな.
		if s[i] == 'n' && i+1 < len(s) &&
			s[i+1] >= 'a' && s[i+1] <= 'z' && !isVowel(s[i+1]) && s[i+1] != 'y' {
			b.WriteString("ん")
			i++
			continue
		}
		matched := false
		for l := 3; l >= 1; l-- {
			if i+l > len(s) {
				continue
			}
			if kana, ok := romajiToHiragana[s[i:i+l]]; ok {
				b.WriteString(kana)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// ToKatakana transliterates Hepburn romaji to katakana.
func ToKatakana(romaji string) string {
	return HiraganaToKatakana(ToHiragana(romaji))
}

// HiraganaToKatakana converts every hiragana rune to its katakana twin.
// Non-hiragana runes pass through.
func HiraganaToKatakana(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0x3041 && r <= 0x3096 {
			b.WriteRune(r + 0x60)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// KatakanaToHiragana converts every katakana rune to its hiragana twin.
// The prolonged sound mark and non-katakana runes pass through.
func KatakanaToHiragana(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0x30A1 && r <= 0x30F6 {
			b.WriteRune(r - 0x60)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsHiragana reports whether every rune is hiragana (ー allowed).
func IsHiragana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 0x3041 || r > 0x3096) && r != 'ー' {
			return false
		}
	}
	return true
}

// IsKatakana reports whether every rune is katakana (ー allowed).
func IsKatakana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 0x30A1 || r > 0x30F6) && r != 'ー' {
			return false
		}
	}
	return true
}

// BothKanaVariants returns the candidate kana spellings for the input so the
// lexicon can be tried with each without the caller re-deriving them:
// pure hiragana yields itself plus its katakana twin (and vice versa);
// romaji yields its hiragana and katakana conversions; anything else yields
// itself alone.
func BothKanaVariants(s string) []string {
	switch {
	case IsHiragana(s):
		return []string{s, HiraganaToKatakana(s)}
	case IsKatakana(s):
		return []string{s, KatakanaToHiragana(s)}
	case ContainsRomaji(s) && !IsJapanese(s):
		h := ToHiragana(s)
		k := HiraganaToKatakana(h)
		if h == k {
			return []string{h}
		}
		return []string{h, k}
	default:
		return []string{s}
	}
}
