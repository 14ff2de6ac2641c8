package search

import (
	"context"
	"sync"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

var _ lexicon = &lexiconMock{}

type lexiconMock struct {
	ReadyFunc          func(ctx context.Context) bool
	SearchJapaneseFunc func(ctx context.Context, q domain.JapaneseSearch) ([]domain.Entry, error)
	SearchEnglishFunc  func(ctx context.Context, text string, limit int) ([]domain.Entry, error)
	SearchWildcardFunc func(ctx context.Context, likePattern string, limit int) ([]domain.Entry, error)

	calls struct {
		Ready          []struct{}
		SearchJapanese []struct {
			Q domain.JapaneseSearch
		}
		SearchEnglish []struct {
			Text  string
			Limit int
		}
		SearchWildcard []struct {
			LikePattern string
			Limit       int
		}
	}
	lockReady          sync.RWMutex
	lockSearchJapanese sync.RWMutex
	lockSearchEnglish  sync.RWMutex
	lockSearchWildcard sync.RWMutex
}

func (mock *lexiconMock) Ready(ctx context.Context) bool {
	mock.lockReady.Lock()
	mock.calls.Ready = append(mock.calls.Ready, struct{}{})
	mock.lockReady.Unlock()
	if mock.ReadyFunc == nil {
		return true
	}
	return mock.ReadyFunc(ctx)
}

func (mock *lexiconMock) SearchJapanese(ctx context.Context, q domain.JapaneseSearch) ([]domain.Entry, error) {
	if mock.SearchJapaneseFunc == nil {
		panic("lexiconMock.SearchJapaneseFunc: method is nil but lexicon.SearchJapanese was just called")
	}
	callInfo := struct {
		Q domain.JapaneseSearch
	}{Q: q}
	mock.lockSearchJapanese.Lock()
	mock.calls.SearchJapanese = append(mock.calls.SearchJapanese, callInfo)
	mock.lockSearchJapanese.Unlock()
	return mock.SearchJapaneseFunc(ctx, q)
}

func (mock *lexiconMock) SearchJapaneseCalls() []struct {
	Q domain.JapaneseSearch
} {
	mock.lockSearchJapanese.RLock()
	calls := mock.calls.SearchJapanese
	mock.lockSearchJapanese.RUnlock()
	return calls
}

func (mock *lexiconMock) SearchEnglish(ctx context.Context, text string, limit int) ([]domain.Entry, error) {
	if mock.SearchEnglishFunc == nil {
		panic("lexiconMock.SearchEnglishFunc: method is nil but lexicon.SearchEnglish was just called")
	}
	callInfo := struct {
		Text  string
		Limit int
	}{Text: text, Limit: limit}
	mock.lockSearchEnglish.Lock()
	mock.calls.SearchEnglish = append(mock.calls.SearchEnglish, callInfo)
	mock.lockSearchEnglish.Unlock()
	return mock.SearchEnglishFunc(ctx, text, limit)
}

func (mock *lexiconMock) SearchEnglishCalls() []struct {
	Text  string
	Limit int
} {
	mock.lockSearchEnglish.RLock()
	calls := mock.calls.SearchEnglish
	mock.lockSearchEnglish.RUnlock()
	return calls
}

func (mock *lexiconMock) SearchWildcard(ctx context.Context, likePattern string, limit int) ([]domain.Entry, error) {
	if mock.SearchWildcardFunc == nil {
		panic("lexiconMock.SearchWildcardFunc: method is nil but lexicon.SearchWildcard was just called")
	}
	callInfo := struct {
		LikePattern string
		Limit       int
	}{LikePattern: likePattern, Limit: limit}
	mock.lockSearchWildcard.Lock()
	mock.calls.SearchWildcard = append(mock.calls.SearchWildcard, callInfo)
	mock.lockSearchWildcard.Unlock()
	return mock.SearchWildcardFunc(ctx, likePattern, limit)
}

func (mock *lexiconMock) SearchWildcardCalls() []struct {
	LikePattern string
	Limit       int
} {
	mock.lockSearchWildcard.RLock()
	calls := mock.calls.SearchWildcard
	mock.lockSearchWildcard.RUnlock()
	return calls
}

var _ kanjiIndex = &kanjiIndexMock{}

type kanjiIndexMock struct {
	SearchKanjiFunc func(ctx context.Context, literal string, limit int) ([]domain.KanjiEntry, error)

	calls struct {
		SearchKanji []struct {
			Literal string
			Limit   int
		}
	}
	lockSearchKanji sync.RWMutex
}

func (mock *kanjiIndexMock) SearchKanji(ctx context.Context, literal string, limit int) ([]domain.KanjiEntry, error) {
	if mock.SearchKanjiFunc == nil {
		panic("kanjiIndexMock.SearchKanjiFunc: method is nil but kanjiIndex.SearchKanji was just called")
	}
	callInfo := struct {
		Literal string
		Limit   int
	}{Literal: literal, Limit: limit}
	mock.lockSearchKanji.Lock()
	mock.calls.SearchKanji = append(mock.calls.SearchKanji, callInfo)
	mock.lockSearchKanji.Unlock()
	return mock.SearchKanjiFunc(ctx, literal, limit)
}

func (mock *kanjiIndexMock) SearchKanjiCalls() []struct {
	Literal string
	Limit   int
} {
	mock.lockSearchKanji.RLock()
	calls := mock.calls.SearchKanji
	mock.lockSearchKanji.RUnlock()
	return calls
}

var _ tokenizer = &tokenizerMock{}

type tokenizerMock struct {
	TokenizeFunc func(ctx context.Context, text string) ([]domain.Token, error)

	calls struct {
		Tokenize []struct {
			Text string
		}
	}
	lockTokenize sync.RWMutex
}

func (mock *tokenizerMock) Tokenize(ctx context.Context, text string) ([]domain.Token, error) {
	if mock.TokenizeFunc == nil {
		panic("tokenizerMock.TokenizeFunc: method is nil but tokenizer.Tokenize was just called")
	}
	callInfo := struct{ Text string }{Text: text}
	mock.lockTokenize.Lock()
	mock.calls.Tokenize = append(mock.calls.Tokenize, callInfo)
	mock.lockTokenize.Unlock()
	return mock.TokenizeFunc(ctx, text)
}

func (mock *tokenizerMock) TokenizeCalls() []struct {
	Text string
} {
	mock.lockTokenize.RLock()
	calls := mock.calls.Tokenize
	mock.lockTokenize.RUnlock()
	return calls
}

var _ deinflector = &deinflectorMock{}

type deinflectorMock struct {
	DeinflectFunc func(ctx context.Context, surface string) []domain.Deinflection

	calls struct {
		Deinflect []struct {
			Surface string
		}
	}
	lockDeinflect sync.RWMutex
}

func (mock *deinflectorMock) Deinflect(ctx context.Context, surface string) []domain.Deinflection {
	if mock.DeinflectFunc == nil {
		return nil
	}
	callInfo := struct{ Surface string }{Surface: surface}
	mock.lockDeinflect.Lock()
	mock.calls.Deinflect = append(mock.calls.Deinflect, callInfo)
	mock.lockDeinflect.Unlock()
	return mock.DeinflectFunc(ctx, surface)
}

func (mock *deinflectorMock) DeinflectCalls() []struct {
	Surface string
} {
	mock.lockDeinflect.RLock()
	calls := mock.calls.Deinflect
	mock.lockDeinflect.RUnlock()
	return calls
}
