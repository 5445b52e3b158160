package data

import (
	"context"

	"tinylink/internal/domain"
)

// Compile-time interface check
var _ domain.LinkRepository = (*CachedLinkRepository)(nil)

// CachedLinkRepository wraps the SQL repository with a read-through cache
// for lookups by code.
type CachedLinkRepository struct {
	repo  *linkRepo
	cache LinkCache
}

// NewCachedLinkRepository creates a new cached repository wrapper.
func NewCachedLinkRepository(repo *linkRepo, cache LinkCache) domain.LinkRepository {
	return &CachedLinkRepository{
		repo:  repo,
		cache: cache,
	}
}

// FindByCode retrieves a link, checking the cache first.
func (r *CachedLinkRepository) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	if cached, err := r.cache.Get(ctx, code); err == nil && cached != nil {
		return cached, nil
	}

	l, err := r.repo.FindByCode(ctx, code)
	if err != nil || l == nil {
		return l, err
	}

	_ = r.cache.Set(ctx, l)
	return l, nil
}

// ExistsByCode is never cached so the pre-insert check sees the store.
func (r *CachedLinkRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.repo.ExistsByCode(ctx, code)
}

// Insert persists a link and primes the cache.
func (r *CachedLinkRepository) Insert(ctx context.Context, code, targetURL string) (*domain.Link, error) {
	l, err := r.repo.Insert(ctx, code, targetURL)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, l)
	return l, nil
}

// ListAll is served from the store.
func (r *CachedLinkRepository) ListAll(ctx context.Context) ([]*domain.Link, error) {
	return r.repo.ListAll(ctx)
}

// DeleteByCode removes a link and invalidates the cache.
func (r *CachedLinkRepository) DeleteByCode(ctx context.Context, code string) (*domain.Link, error) {
	l, err := r.repo.DeleteByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Invalidate(ctx, code)
	return l, nil
}

// RecordClick increments the counter in the store and invalidates the cache.
func (r *CachedLinkRepository) RecordClick(ctx context.Context, code string) (*domain.Link, error) {
	l, err := r.repo.RecordClick(ctx, code)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Invalidate(ctx, code)
	return l, nil
}
