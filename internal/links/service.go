package links

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Service is the link registry: it orchestrates validation and the
// key-value store for every create/update/delete/get/list.
type Service struct {
	store  Store
	stats  StatsReader
	logger *zap.Logger
}

// NewService creates a link registry service.
func NewService(store Store, stats StatsReader, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		stats:  stats,
		logger: logger,
	}
}

// UpsertResult is the outcome of CreateOrUpdate.
type UpsertResult struct {
	Link    Link
	Created bool
	Message string
}

// List returns every stored link, in the store's native enumeration order.
// Any listing or fetch failure fails the whole call; no partial results.
func (s *Service) List(ctx context.Context) ([]Link, error) {
	keys, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list link keys: %w", err)
	}

	result := make([]Link, 0, len(keys))

	for _, key := range keys {
		data, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("fetch link %q: %w", key, err)
		}

		link, err := DecodeRecord(key, data)
		if err != nil {
			return nil, err
		}

		result = append(result, link)
	}

	return result, nil
}

// Get returns the link for a shortcut along with its visit stats.
// Returns ErrNotFound when the shortcut is absent.
func (s *Service) Get(ctx context.Context, shortcut string) (Link, Stats, error) {
	key := Normalize(shortcut)

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Link{}, Stats{}, ErrNotFound
		}

		return Link{}, Stats{}, fmt.Errorf("fetch link %q: %w", key, err)
	}

	link, err := DecodeRecord(key, data)
	if err != nil {
		return Link{}, Stats{}, err
	}

	stats, err := s.stats.Stats(ctx, key)
	if err != nil {
		// Stats are a best-effort attachment; a failed lookup never
		// fails the get.
		s.logger.Warn("stats lookup failed",
			zap.String("shortcut", key),
			zap.Error(err),
		)

		stats = Stats{Shortcut: key}
	}

	return link, stats, nil
}

// CreateOrUpdate validates and stores a link, preserving CreatedAt when the
// (normalized) shortcut already exists.
//
// The fetch-then-write sequence is not conditional: two concurrent writers
// for the same shortcut race, and the last write wins wholesale, including
// its possibly stale view of CreatedAt.
func (s *Service) CreateOrUpdate(ctx context.Context, shortcut, rawURL, description string) (UpsertResult, error) {
	if err := ValidateShortcut(shortcut); err != nil {
		return UpsertResult{}, err
	}

	if !IsValidURL(rawURL) {
		return UpsertResult{}, &ValidationError{
			Message: "Invalid URL format (must start with http:// or https://)",
		}
	}

	key := Normalize(shortcut)
	now := time.Now().UTC()

	link := Link{
		Shortcut:    key,
		URL:         rawURL,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created := true

	existing, err := s.store.Get(ctx, key)

	switch {
	case err == nil:
		prev, decErr := DecodeRecord(key, existing)
		if decErr != nil {
			return UpsertResult{}, decErr
		}

		link.CreatedAt = prev.CreatedAt
		created = false
	case errors.Is(err, ErrNotFound):
		// First write for this key.
	default:
		return UpsertResult{}, fmt.Errorf("fetch existing link %q: %w", key, err)
	}

	data, err := EncodeRecord(link)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("encode link %q: %w", key, err)
	}

	if err := s.store.Put(ctx, key, data); err != nil {
		return UpsertResult{}, fmt.Errorf("store link %q: %w", key, err)
	}

	message := "Link updated"
	if created {
		message = "Link created"
	}

	s.logger.Info("link stored",
		zap.String("shortcut", key),
		zap.String("url", link.URL),
		zap.Bool("created", created),
	)

	return UpsertResult{Link: link, Created: created, Message: message}, nil
}

// Delete removes a shortcut. Returns ErrNotFound when it was never stored.
func (s *Service) Delete(ctx context.Context, shortcut string) error {
	key := Normalize(shortcut)

	if _, err := s.store.Get(ctx, key); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("fetch link %q: %w", key, err)
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete link %q: %w", key, err)
	}

	s.logger.Info("link deleted", zap.String("shortcut", key))

	return nil
}

// Resolve looks up the destination for a shortcut. It is the read path of
// every redirect and does no validation: unknown shortcuts simply miss.
func (s *Service) Resolve(ctx context.Context, shortcut string) (Link, error) {
	key := Normalize(shortcut)

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Link{}, ErrNotFound
		}

		return Link{}, fmt.Errorf("fetch link %q: %w", key, err)
	}

	return DecodeRecord(key, data)
}
