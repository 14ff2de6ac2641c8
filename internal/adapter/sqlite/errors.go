package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// MapError converts database/sql errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass
// through so cancellation stays recognizable upstream.
func MapError(err error, op, query string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %q: %w", op, query, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", op, query, domain.ErrNotFound)
	}

	return fmt.Errorf("%s %q: %w", op, query, err)
}
