// Package secrets resolves secret references embedded in actor configuration.
//
// A reference is a JSON object of the form {"_secret": "<coordinate>"}. Hydration replaces each reference with the
// payload stored at the coordinate.
package secrets

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/aplog"
	"github.com/rmorlok/syncstore/internal/database"
)

const ReferenceKey = "_secret"

// Reader is the part of the store hydration reads from.
type Reader interface {
	ReadSecret(ctx context.Context, coordinate string) (string, error)
}

type Hydrator interface {
	// Hydrate returns a copy of the configuration with every secret reference replaced by its payload.
	Hydrate(ctx context.Context, configuration database.ActorConfiguration) (database.ActorConfiguration, error)

	// HydrateActor returns a copy of the actor with a hydrated configuration.
	HydrateActor(ctx context.Context, a *database.Actor) (*database.Actor, error)
}

type hydrator struct {
	r      Reader
	logger *slog.Logger
}

func NewHydrator(r Reader, logger *slog.Logger) Hydrator {
	return &hydrator{
		r:      r,
		logger: aplog.NewBuilder(logger).WithComponent("secrets").Build(),
	}
}

func (h *hydrator) Hydrate(ctx context.Context, configuration database.ActorConfiguration) (database.ActorConfiguration, error) {
	if len(configuration) == 0 {
		return configuration, nil
	}

	var tree interface{}
	if err := json.Unmarshal(configuration, &tree); err != nil {
		return nil, errors.Wrap(err, "failed to parse actor configuration")
	}

	replaced := 0
	hydrated, err := h.hydrateNode(ctx, tree, &replaced)
	if err != nil {
		return nil, err
	}

	if replaced == 0 {
		return configuration, nil
	}

	data, err := json.Marshal(hydrated)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize hydrated configuration")
	}

	h.logger.Debug("hydrated secrets", "count", replaced)
	return data, nil
}

func (h *hydrator) hydrateNode(ctx context.Context, node interface{}, replaced *int) (interface{}, error) {
	switch v := node.(type) {
	case map[string]interface{}:
		if coordinate, ok := reference(v); ok {
			payload, err := h.r.ReadSecret(ctx, coordinate)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read secret '%s'", coordinate)
			}
			*replaced++
			return payload, nil
		}

		result := make(map[string]interface{}, len(v))
		for key, child := range v {
			hydrated, err := h.hydrateNode(ctx, child, replaced)
			if err != nil {
				return nil, err
			}
			result[key] = hydrated
		}
		return result, nil
	case []interface{}:
		result := make([]interface{}, 0, len(v))
		for _, child := range v {
			hydrated, err := h.hydrateNode(ctx, child, replaced)
			if err != nil {
				return nil, err
			}
			result = append(result, hydrated)
		}
		return result, nil
	default:
		return node, nil
	}
}

// reference reports whether an object is exactly a secret reference.
func reference(obj map[string]interface{}) (string, bool) {
	if len(obj) != 1 {
		return "", false
	}

	coordinate, ok := obj[ReferenceKey].(string)
	return coordinate, ok
}

func (h *hydrator) HydrateActor(ctx context.Context, a *database.Actor) (*database.Actor, error) {
	if a == nil {
		return nil, errors.New("actor is required")
	}

	configuration, err := h.Hydrate(ctx, a.Configuration)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hydrate actor '%s'", a.Id)
	}

	cpy := *a
	cpy.Configuration = configuration
	return &cpy, nil
}
