package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"dino-game-service/internal/domain"
)

// ContentLoader fetches catalogs and clue cases from a backing store.
type ContentLoader interface {
	LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
	LoadCase(ctx context.Context, caseID string) (domain.ClueCase, error)
}

// ContentRepository caches whole documents as JSON in Redis and falls back
// to a loader on cache miss. The engine needs every field of a question
// (explanation, flags, hint) at feedback time, so entire catalogs are
// cached rather than just answer keys:
//
//	SET game:catalog:{id} {json} EX ttl
//	SET game:case:{id}    {json} EX ttl
type ContentRepository struct {
	client *redis.Client
	loader ContentLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewContentRepository(client *redis.Client, loader ContentLoader, ttl time.Duration) *ContentRepository {
	return &ContentRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ContentRepository) GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	key := r.catalogKey(catalogID)

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var catalog domain.Catalog
		if err := json.Unmarshal(raw, &catalog); err == nil {
			return catalog, nil
		}
		// corrupt entry: fall through and overwrite from the loader
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Re-check in case another goroutine filled the cache.
		if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
			var catalog domain.Catalog
			if err := json.Unmarshal(raw, &catalog); err == nil {
				return catalog, nil
			}
		}

		catalog, err := r.loader.LoadCatalog(ctx, catalogID)
		if err != nil {
			return domain.Catalog{}, err
		}
		r.store(ctx, key, catalog)
		return catalog, nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return result.(domain.Catalog), nil
}

func (r *ContentRepository) GetCase(ctx context.Context, caseID string) (domain.ClueCase, error) {
	key := r.caseKey(caseID)

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var doc domain.ClueCase
		if err := json.Unmarshal(raw, &doc); err == nil {
			return doc, nil
		}
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
			var doc domain.ClueCase
			if err := json.Unmarshal(raw, &doc); err == nil {
				return doc, nil
			}
		}

		doc, err := r.loader.LoadCase(ctx, caseID)
		if err != nil {
			return domain.ClueCase{}, err
		}
		r.store(ctx, key, doc)
		return doc, nil
	})
	if err != nil {
		return domain.ClueCase{}, err
	}
	return result.(domain.ClueCase), nil
}

// store is best effort; a failed cache write only costs a reload later.
func (r *ContentRepository) store(ctx context.Context, key string, doc any) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, key, raw, r.ttlWithJitter()).Err()
}

func (r *ContentRepository) catalogKey(catalogID string) string {
	return "game:catalog:" + catalogID
}

func (r *ContentRepository) caseKey(caseID string) string {
	return "game:case:" + caseID
}

func (r *ContentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
