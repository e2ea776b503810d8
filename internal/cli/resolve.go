package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/repository"
)

// resolveRecord resolves a history record by full ID or unique ID prefix.
func resolveRecord(ctx context.Context, app *App, ref string) (*domain.Record, error) {
	rec, err := app.History.Get(ctx, ref)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	records, err := app.History.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Record
	for _, r := range records {
		if strings.HasPrefix(r.ID, ref) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no assessment matches %q", ref)
	default:
		return nil, fmt.Errorf("%q is ambiguous (%d matches); use a longer prefix", ref, len(matches))
	}
}
