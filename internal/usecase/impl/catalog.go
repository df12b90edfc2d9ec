package impl

import (
	"context"
	"maps"
	"slices"

	"eventpulse/internal/domain/entity"
	"eventpulse/internal/domain/repository"
	"eventpulse/internal/errors"

	"github.com/google/uuid"
)

// missingCatalogIDs lists the favorited events and the uncategorised
// interaction events that known does not cover, sorted for a stable query
func missingCatalogIDs(known []*entity.Event, interactions []*entity.Interaction, favorites entity.EventIDSet) []uuid.UUID {
	index := indexEvents(known)

	missing := entity.NewEventIDSet()
	for id := range favorites {
		if _, ok := index[id]; !ok {
			missing.Add(id)
		}
	}
	for _, interaction := range interactions {
		if interaction == nil || interaction.EventCategory != "" {
			continue
		}
		if _, ok := index[interaction.EventID]; !ok {
			missing.Add(interaction.EventID)
		}
	}

	return slices.SortedFunc(maps.Keys(missing), func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
}

// loadCatalogExtras reads the events referenced by favorites and history
// that are not part of known, so their category and price are available to
// scoring. It returns nil without a query when nothing is missing.
func loadCatalogExtras(ctx context.Context, repo repository.EventRepository, known []*entity.Event, interactions []*entity.Interaction, favorites entity.EventIDSet) ([]*entity.Event, error) {
	ids := missingCatalogIDs(known, interactions, favorites)
	if len(ids) == 0 {
		return nil, nil
	}

	extra, err := repo.FindEvents(ctx, repository.EventFilter{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorite and history events")
	}

	return extra, nil
}

// withCatalog joins the candidate read with the extra catalog events
func withCatalog(known, extra []*entity.Event) []*entity.Event {
	if len(extra) == 0 {
		return known
	}

	return append(append(make([]*entity.Event, 0, len(known)+len(extra)), known...), extra...)
}
