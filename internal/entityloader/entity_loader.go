package entityloader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pwallin/corpgraph/internal/domain"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader"
)

type EntityLoader struct {
	Loader *dataloader.Loader
}

// Key encodes an (entity id, as-of date) pair as a dataloader key. Versions
// of the same entity at different dates are distinct cache entries.
func Key(id uuid.UUID, asOf time.Time) dataloader.Key {
	return dataloader.StringKey(id.String() + "|" + asOf.Format(time.RFC3339))
}

func parseKey(key dataloader.Key) (uuid.UUID, time.Time, error) {
	parts := strings.SplitN(key.String(), "|", 2)
	if len(parts) != 2 {
		return uuid.Nil, time.Time{}, fmt.Errorf("invalid entity loader key %q", key.String())
	}
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("invalid UUID: %w", err)
	}
	asOf, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("invalid as-of date: %w", err)
	}
	return id, asOf, nil
}

func NewEntityLoader(store *temporal.Store) *EntityLoader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		results := make([]*dataloader.Result, len(keys))
		for i, key := range keys {
			id, asOf, err := parseKey(key)
			if err != nil {
				results[i] = &dataloader.Result{Error: err}
				continue
			}

			entity, err := store.GetEntity(ctx, id, asOf)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Dangling references resolve to nil, not an error.
					results[i] = &dataloader.Result{Data: nil}
					continue
				}
				results[i] = &dataloader.Result{Error: err}
				continue
			}
			results[i] = &dataloader.Result{Data: entity}
		}
		return results
	}

	loader := dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(5*time.Millisecond))

	return &EntityLoader{Loader: loader}
}
