package deinflect

import (
	"context"
	"sync"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

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
