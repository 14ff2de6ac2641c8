// Package deinflect reduces conjugated Japanese surface forms to their
// dictionary forms using an ordered suffix-rule table, irregular-verb lookup
// tables, and cross-validation against the external morphological tokenizer.
package deinflect

import (
	"sort"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// irregularSuffixes maps conjugated suffixes of する, くる, and いく to their
// base forms. These verbs defy regular suffix stripping, so compounds like
// 勉強した resolve through this table (suffix した → する).
var irregularSuffixes = []domain.ConjugationRule{
	// する
	{Ending: "しませんでした", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "polite negative past", RuleID: "suru-neg-past-pol", Weight: 10},
	{Ending: "しました", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "polite past", RuleID: "suru-past-pol", Weight: 9},
	{Ending: "しません", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "polite negative", RuleID: "suru-neg-pol", Weight: 9},
	{Ending: "しなかった", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "negative past", RuleID: "suru-neg-past", Weight: 9},
	{Ending: "します", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "polite", RuleID: "suru-pol", Weight: 8},
	{Ending: "しない", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "negative", RuleID: "suru-neg", Weight: 8},
	{Ending: "された", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "passive past", RuleID: "suru-pass-past", Weight: 7},
	{Ending: "される", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "passive", RuleID: "suru-pass", Weight: 7},
	{Ending: "させる", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "causative", RuleID: "suru-caus", Weight: 7},
	{Ending: "すれば", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "conditional", RuleID: "suru-cond", Weight: 7},
	{Ending: "しよう", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "volitional", RuleID: "suru-vol", Weight: 7},
	{Ending: "して", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "te-form", RuleID: "suru-te", Weight: 6},
	{Ending: "した", Base: "する", VerbType: domain.VerbTypeSuru, Reason: "past", RuleID: "suru-past", Weight: 6},

	// くる
	{Ending: "きませんでした", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "polite negative past", RuleID: "kuru-neg-past-pol", Weight: 10},
	{Ending: "きました", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "polite past", RuleID: "kuru-past-pol", Weight: 9},
	{Ending: "きません", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "polite negative", RuleID: "kuru-neg-pol", Weight: 9},
	{Ending: "こなかった", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "negative past", RuleID: "kuru-neg-past", Weight: 9},
	{Ending: "こられる", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "potential", RuleID: "kuru-pot", Weight: 8},
	{Ending: "きます", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "polite", RuleID: "kuru-pol", Weight: 8},
	{Ending: "こない", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "negative", RuleID: "kuru-neg", Weight: 8},
	{Ending: "くれば", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "conditional", RuleID: "kuru-cond", Weight: 7},
	{Ending: "こよう", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "volitional", RuleID: "kuru-vol", Weight: 7},
	{Ending: "きて", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "te-form", RuleID: "kuru-te", Weight: 6},
	{Ending: "きた", Base: "くる", VerbType: domain.VerbTypeKuru, Reason: "past", RuleID: "kuru-past", Weight: 6},

	// いく (regular everywhere except the past/te stem)
	{Ending: "いった", Base: "いく", VerbType: domain.VerbTypeIku, Reason: "past", RuleID: "iku-past", Weight: 6},
	{Ending: "いって", Base: "いく", VerbType: domain.VerbTypeIku, Reason: "te-form", RuleID: "iku-te", Weight: 6},
	{Ending: "行った", Base: "行く", VerbType: domain.VerbTypeIku, Reason: "past", RuleID: "iku-past-kanji", Weight: 6},
	{Ending: "行って", Base: "行く", VerbType: domain.VerbTypeIku, Reason: "te-form", RuleID: "iku-te-kanji", Weight: 6},
}

// rules is the regular conjugation table. Entries are kept sorted by ending
// length (longest first) so greedy suffix matching is correct: ませんでした
// must be tried before ません, and ました before た.
var rules = buildRules()

func buildRules() []domain.ConjugationRule {
	rs := []domain.ConjugationRule{
		// --- polite chains, applicable to the pre-ます stem ---
		{Ending: "ませんでした", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "polite negative past", RuleID: "v1-neg-past-pol", Weight: 10},
		{Ending: "きませんでした", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "polite negative past", RuleID: "v5k-neg-past-pol", Weight: 10},
		{Ending: "ぎませんでした", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "polite negative past", RuleID: "v5g-neg-past-pol", Weight: 10},
		{Ending: "しませんでした", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "polite negative past", RuleID: "v5s-neg-past-pol", Weight: 10},
		{Ending: "ちませんでした", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "polite negative past", RuleID: "v5t-neg-past-pol", Weight: 10},
		{Ending: "にませんでした", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "polite negative past", RuleID: "v5n-neg-past-pol", Weight: 10},
		{Ending: "びませんでした", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "polite negative past", RuleID: "v5b-neg-past-pol", Weight: 10},
		{Ending: "みませんでした", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "polite negative past", RuleID: "v5m-neg-past-pol", Weight: 10},
		{Ending: "りませんでした", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "polite negative past", RuleID: "v5r-neg-past-pol", Weight: 10},
		{Ending: "いませんでした", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "polite negative past", RuleID: "v5u-neg-past-pol", Weight: 10},

		{Ending: "ました", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "polite past", RuleID: "v1-past-pol", Weight: 9},
		{Ending: "ません", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "polite negative", RuleID: "v1-neg-pol", Weight: 9},
		{Ending: "きました", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "polite past", RuleID: "v5k-past-pol", Weight: 9},
		{Ending: "きません", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "polite negative", RuleID: "v5k-neg-pol", Weight: 9},
		{Ending: "ぎました", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "polite past", RuleID: "v5g-past-pol", Weight: 9},
		{Ending: "しました", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "polite past", RuleID: "v5s-past-pol", Weight: 9},
		{Ending: "ちました", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "polite past", RuleID: "v5t-past-pol", Weight: 9},
		{Ending: "にました", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "polite past", RuleID: "v5n-past-pol", Weight: 9},
		{Ending: "びました", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "polite past", RuleID: "v5b-past-pol", Weight: 9},
		{Ending: "みました", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "polite past", RuleID: "v5m-past-pol", Weight: 9},
		{Ending: "りました", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "polite past", RuleID: "v5r-past-pol", Weight: 9},
		{Ending: "いました", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "polite past", RuleID: "v5u-past-pol", Weight: 9},

		// --- negative / negative past ---
		{Ending: "なかった", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "negative past", RuleID: "v1-neg-past", Weight: 8},
		{Ending: "かなかった", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "negative past", RuleID: "v5k-neg-past", Weight: 8},
		{Ending: "がなかった", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "negative past", RuleID: "v5g-neg-past", Weight: 8},
		{Ending: "さなかった", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "negative past", RuleID: "v5s-neg-past", Weight: 8},
		{Ending: "たなかった", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "negative past", RuleID: "v5t-neg-past", Weight: 8},
		{Ending: "ななかった", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "negative past", RuleID: "v5n-neg-past", Weight: 8},
		{Ending: "ばなかった", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "negative past", RuleID: "v5b-neg-past", Weight: 8},
		{Ending: "まなかった", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "negative past", RuleID: "v5m-neg-past", Weight: 8},
		{Ending: "らなかった", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "negative past", RuleID: "v5r-neg-past", Weight: 8},
		{Ending: "わなかった", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "negative past", RuleID: "v5u-neg-past", Weight: 8},

		{Ending: "かない", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "negative", RuleID: "v5k-neg", Weight: 7},
		{Ending: "がない", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "negative", RuleID: "v5g-neg", Weight: 7},
		{Ending: "さない", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "negative", RuleID: "v5s-neg", Weight: 7},
		{Ending: "たない", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "negative", RuleID: "v5t-neg", Weight: 7},
		{Ending: "なない", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "negative", RuleID: "v5n-neg", Weight: 7},
		{Ending: "ばない", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "negative", RuleID: "v5b-neg", Weight: 7},
		{Ending: "まない", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "negative", RuleID: "v5m-neg", Weight: 7},
		{Ending: "らない", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "negative", RuleID: "v5r-neg", Weight: 7},
		{Ending: "わない", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "negative", RuleID: "v5u-neg", Weight: 7},
		{Ending: "ない", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "negative", RuleID: "v1-neg", Weight: 6},

		// --- i-adjectives ---
		{Ending: "くなかった", Base: "い", VerbType: domain.VerbTypeIAdjective, Reason: "negative past", RuleID: "adj-neg-past", Weight: 8},
		{Ending: "かった", Base: "い", VerbType: domain.VerbTypeIAdjective, Reason: "past", RuleID: "adj-past", Weight: 7},
		{Ending: "くない", Base: "い", VerbType: domain.VerbTypeIAdjective, Reason: "negative", RuleID: "adj-neg", Weight: 7},
		{Ending: "くて", Base: "い", VerbType: domain.VerbTypeIAdjective, Reason: "te-form", RuleID: "adj-te", Weight: 6},
		{Ending: "ければ", Base: "い", VerbType: domain.VerbTypeIAdjective, Reason: "conditional", RuleID: "adj-cond", Weight: 6},
		{Ending: "すぎる", Base: "い", VerbType: domain.VerbTypeIAdjective, Reason: "excessive", RuleID: "adj-sugiru", Weight: 5},

		// --- potential / passive / causative ---
		{Ending: "られる", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "potential/passive", RuleID: "v1-pot", Weight: 7},
		{Ending: "させる", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "causative", RuleID: "v1-caus", Weight: 7},
		{Ending: "ける", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "potential", RuleID: "v5k-pot", Weight: 5},
		{Ending: "げる", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "potential", RuleID: "v5g-pot", Weight: 5},
		{Ending: "せる", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "potential", RuleID: "v5s-pot", Weight: 5},
		{Ending: "てる", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "potential", RuleID: "v5t-pot", Weight: 5},
		{Ending: "ねる", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "potential", RuleID: "v5n-pot", Weight: 5},
		{Ending: "べる", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "potential", RuleID: "v5b-pot", Weight: 5},
		{Ending: "める", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "potential", RuleID: "v5m-pot", Weight: 5},
		{Ending: "かれる", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "passive", RuleID: "v5k-pass", Weight: 6},
		{Ending: "がれる", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "passive", RuleID: "v5g-pass", Weight: 6},
		{Ending: "される", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "passive", RuleID: "v5s-pass", Weight: 6},
		{Ending: "たれる", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "passive", RuleID: "v5t-pass", Weight: 6},
		{Ending: "ばれる", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "passive", RuleID: "v5b-pass", Weight: 6},
		{Ending: "まれる", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "passive", RuleID: "v5m-pass", Weight: 6},
		{Ending: "られる", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "passive", RuleID: "v5r-pass", Weight: 6},
		{Ending: "われる", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "passive", RuleID: "v5u-pass", Weight: 6},

		// --- conditional / volitional ---
		{Ending: "れば", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "conditional", RuleID: "v1-cond", Weight: 6},
		{Ending: "けば", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "conditional", RuleID: "v5k-cond", Weight: 6},
		{Ending: "げば", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "conditional", RuleID: "v5g-cond", Weight: 6},
		{Ending: "せば", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "conditional", RuleID: "v5s-cond", Weight: 6},
		{Ending: "てば", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "conditional", RuleID: "v5t-cond", Weight: 6},
		{Ending: "ねば", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "conditional", RuleID: "v5n-cond", Weight: 6},
		{Ending: "べば", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "conditional", RuleID: "v5b-cond", Weight: 6},
		{Ending: "めば", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "conditional", RuleID: "v5m-cond", Weight: 6},
		{Ending: "えば", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "conditional", RuleID: "v5u-cond", Weight: 6},
		{Ending: "よう", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "volitional", RuleID: "v1-vol", Weight: 5},
		{Ending: "こう", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "volitional", RuleID: "v5k-vol", Weight: 5},
		{Ending: "ごう", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "volitional", RuleID: "v5g-vol", Weight: 5},
		{Ending: "そう", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "volitional", RuleID: "v5s-vol", Weight: 5},
		{Ending: "とう", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "volitional", RuleID: "v5t-vol", Weight: 5},
		{Ending: "のう", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "volitional", RuleID: "v5n-vol", Weight: 5},
		{Ending: "ぼう", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "volitional", RuleID: "v5b-vol", Weight: 5},
		{Ending: "もう", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "volitional", RuleID: "v5m-vol", Weight: 5},
		{Ending: "ろう", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "volitional", RuleID: "v5r-vol", Weight: 5},

		// --- desiderative ---
		{Ending: "たい", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "desiderative", RuleID: "v1-tai", Weight: 5},
		{Ending: "きたい", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "desiderative", RuleID: "v5k-tai", Weight: 6},
		{Ending: "したい", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "desiderative", RuleID: "v5s-tai", Weight: 6},
		{Ending: "みたい", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "desiderative", RuleID: "v5m-tai", Weight: 6},
		{Ending: "りたい", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "desiderative", RuleID: "v5r-tai", Weight: 6},
		{Ending: "いたい", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "desiderative", RuleID: "v5u-tai", Weight: 6},

		// --- polite non-past ---
		{Ending: "きます", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "polite", RuleID: "v5k-pol", Weight: 6},
		{Ending: "ぎます", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "polite", RuleID: "v5g-pol", Weight: 6},
		{Ending: "します", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "polite", RuleID: "v5s-pol", Weight: 6},
		{Ending: "ちます", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "polite", RuleID: "v5t-pol", Weight: 6},
		{Ending: "にます", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "polite", RuleID: "v5n-pol", Weight: 6},
		{Ending: "びます", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "polite", RuleID: "v5b-pol", Weight: 6},
		{Ending: "みます", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "polite", RuleID: "v5m-pol", Weight: 6},
		{Ending: "ります", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "polite", RuleID: "v5r-pol", Weight: 6},
		{Ending: "います", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "polite", RuleID: "v5u-pol", Weight: 6},
		{Ending: "ます", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "polite", RuleID: "v1-pol", Weight: 5},

		// --- past / te-form ---
		{Ending: "いた", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "past", RuleID: "v5k-past", Weight: 5},
		{Ending: "いだ", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "past", RuleID: "v5g-past", Weight: 5},
		{Ending: "した", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "past", RuleID: "v5s-past", Weight: 5},
		{Ending: "った", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "past", RuleID: "v5t-past", Weight: 5},
		{Ending: "った", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "past", RuleID: "v5r-past", Weight: 5},
		{Ending: "った", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "past", RuleID: "v5u-past", Weight: 5},
		{Ending: "んだ", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "past", RuleID: "v5n-past", Weight: 5},
		{Ending: "んだ", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "past", RuleID: "v5b-past", Weight: 5},
		{Ending: "んだ", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "past", RuleID: "v5m-past", Weight: 5},
		{Ending: "いて", Base: "く", VerbType: domain.VerbTypeGodanKu, Reason: "te-form", RuleID: "v5k-te", Weight: 5},
		{Ending: "いで", Base: "ぐ", VerbType: domain.VerbTypeGodanGu, Reason: "te-form", RuleID: "v5g-te", Weight: 5},
		{Ending: "して", Base: "す", VerbType: domain.VerbTypeGodanSu, Reason: "te-form", RuleID: "v5s-te", Weight: 5},
		{Ending: "って", Base: "つ", VerbType: domain.VerbTypeGodanTsu, Reason: "te-form", RuleID: "v5t-te", Weight: 5},
		{Ending: "って", Base: "る", VerbType: domain.VerbTypeGodanRu, Reason: "te-form", RuleID: "v5r-te", Weight: 5},
		{Ending: "って", Base: "う", VerbType: domain.VerbTypeGodanU, Reason: "te-form", RuleID: "v5u-te", Weight: 5},
		{Ending: "んで", Base: "ぬ", VerbType: domain.VerbTypeGodanNu, Reason: "te-form", RuleID: "v5n-te", Weight: 5},
		{Ending: "んで", Base: "ぶ", VerbType: domain.VerbTypeGodanBu, Reason: "te-form", RuleID: "v5b-te", Weight: 5},
		{Ending: "んで", Base: "む", VerbType: domain.VerbTypeGodanMu, Reason: "te-form", RuleID: "v5m-te", Weight: 5},
		{Ending: "た", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "past", RuleID: "v1-past", Weight: 4},
		{Ending: "て", Base: "る", VerbType: domain.VerbTypeIchidan, Reason: "te-form", RuleID: "v1-te", Weight: 4},
	}

	// longest ending first; stable so hand order breaks same-length ties
	sort.SliceStable(rs, func(i, j int) bool {
		return len([]rune(rs[i].Ending)) > len([]rune(rs[j].Ending))
	})
	return rs
}

// dictionaryEndings are the kana a base form may legitimately end in,
// per verb type. Used by candidate scoring.
var dictionaryEndings = map[domain.VerbType]string{
	domain.VerbTypeIchidan:    "る",
	domain.VerbTypeGodanU:     "う",
	domain.VerbTypeGodanKu:    "く",
	domain.VerbTypeGodanGu:    "ぐ",
	domain.VerbTypeGodanSu:    "す",
	domain.VerbTypeGodanTsu:   "つ",
	domain.VerbTypeGodanNu:    "ぬ",
	domain.VerbTypeGodanBu:    "ぶ",
	domain.VerbTypeGodanMu:    "む",
	domain.VerbTypeGodanRu:    "る",
	domain.VerbTypeSuru:       "る",
	domain.VerbTypeKuru:       "る",
	domain.VerbTypeIku:        "く",
	domain.VerbTypeIAdjective: "い",
}
