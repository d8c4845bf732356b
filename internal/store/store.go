package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "mustache:template:"

// ErrTemplateNotFound is returned when no template is stored under a name
var ErrTemplateNotFound = errors.New("template not found")

// TemplateStore keeps template sources in Redis
type TemplateStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTemplateStore creates a new Redis template store
func NewTemplateStore(client *redis.Client, logger *zap.Logger) *TemplateStore {
	return &TemplateStore{
		client: client,
		logger: logger,
	}
}

func templateKey(name string) string {
	return keyPrefix + name
}

// Save stores a template source under name
func (s *TemplateStore) Save(ctx context.Context, name, source string) error {
	if name == "" {
		return fmt.Errorf("template name is required")
	}

	if err := s.client.Set(ctx, templateKey(name), source, 0).Err(); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	s.logger.Debug("saved template", zap.String("name", name), zap.Int("bytes", len(source)))
	return nil
}

// Load returns the template source stored under name
func (s *TemplateStore) Load(ctx context.Context, name string) (string, error) {
	source, err := s.client.Get(ctx, templateKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("failed to load template: %w", err)
	}

	return source, nil
}

// Delete deletes a template
func (s *TemplateStore) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, templateKey(name)).Err(); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}

// Exists checks if a template is stored under name
func (s *TemplateStore) Exists(ctx context.Context, name string) (bool, error) {
	result, err := s.client.Exists(ctx, templateKey(name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}

	return result > 0, nil
}

// SetTTL sets a time-to-live for a template. It returns ErrTemplateNotFound
// when no template is stored under name.
func (s *TemplateStore) SetTTL(ctx context.Context, name string, ttl time.Duration) error {
	ok, err := s.client.Expire(ctx, templateKey(name), ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to set TTL: %w", err)
	}
	if !ok {
		return fmt.Errorf("template %q: %w", name, ErrTemplateNotFound)
	}

	return nil
}

// List returns the names of all stored templates
func (s *TemplateStore) List(ctx context.Context) ([]string, error) {
	var names []string

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if len(key) > len(keyPrefix) {
			names = append(names, key[len(keyPrefix):])
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	return names, nil
}
