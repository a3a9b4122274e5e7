package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"dino-game-service/internal/domain"
)

// ContentLoader fetches catalogs and clue cases from a backing store
// (e.g. Postgres).
type ContentLoader interface {
	LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
	LoadCase(ctx context.Context, caseID string) (domain.ClueCase, error)
}

// ContentRepository caches catalogs and cases with TTL to avoid repeated
// backing-store hits; concurrent misses for the same key collapse into one
// load.
type ContentRepository struct {
	loader ContentLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu       sync.RWMutex
	catalogs map[string]cachedCatalog
	cases    map[string]cachedCase
}

type cachedCatalog struct {
	catalog   domain.Catalog
	expiresAt time.Time
}

type cachedCase struct {
	doc       domain.ClueCase
	expiresAt time.Time
}

func NewContentRepository(loader ContentLoader, ttl time.Duration) *ContentRepository {
	return &ContentRepository{
		loader:   loader,
		ttl:      ttl,
		clock:    time.Now,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		catalogs: make(map[string]cachedCatalog),
		cases:    make(map[string]cachedCase),
	}
}

func (r *ContentRepository) GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.catalogs[catalogID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.catalog, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("catalog:"+catalogID, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.catalogs[catalogID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.catalog, nil
		}
		r.mu.RUnlock()

		catalog, err := r.loader.LoadCatalog(ctx, catalogID)
		if err != nil {
			return domain.Catalog{}, err
		}

		r.mu.Lock()
		r.catalogs[catalogID] = cachedCatalog{
			catalog:   catalog,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return catalog, nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return result.(domain.Catalog), nil
}

func (r *ContentRepository) GetCase(ctx context.Context, caseID string) (domain.ClueCase, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cases[caseID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.doc, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("case:"+caseID, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cases[caseID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.doc, nil
		}
		r.mu.RUnlock()

		doc, err := r.loader.LoadCase(ctx, caseID)
		if err != nil {
			return domain.ClueCase{}, err
		}

		r.mu.Lock()
		r.cases[caseID] = cachedCase{
			doc:       doc,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		return domain.ClueCase{}, err
	}
	return result.(domain.ClueCase), nil
}

func (r *ContentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticContentLoader serves content from in-memory maps (demos and tests).
type StaticContentLoader struct {
	catalogs map[string]domain.Catalog
	cases    map[string]domain.ClueCase
}

func NewStaticContentLoader(catalogs map[string]domain.Catalog, cases map[string]domain.ClueCase) *StaticContentLoader {
	return &StaticContentLoader{catalogs: catalogs, cases: cases}
}

func (l *StaticContentLoader) LoadCatalog(_ context.Context, catalogID string) (domain.Catalog, error) {
	if catalog, ok := l.catalogs[catalogID]; ok {
		return catalog, nil
	}
	return domain.Catalog{}, domain.ErrCatalogNotFound
}

func (l *StaticContentLoader) LoadCase(_ context.Context, caseID string) (domain.ClueCase, error) {
	if doc, ok := l.cases[caseID]; ok {
		return doc, nil
	}
	return domain.ClueCase{}, domain.ErrCaseNotFound
}
