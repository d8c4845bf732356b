package store

import (
	"context"
	"errors"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func TestTemplateKey(t *testing.T) {
	if got := templateKey("welcome"); got != "mustache:template:welcome" {
		t.Fatalf("got %q", got)
	}
}

// newTestStore connects to REDIS_TEST_ADDR and skips the test when it is not set.
func newTestStore(t *testing.T) *TemplateStore {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush test db: %v", err)
	}
	return NewTemplateStore(client, zap.NewNop())
}

func TestTemplateStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "a", "{{a}}"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "b", "{{b}}"); err != nil {
		t.Fatal(err)
	}

	source, err := s.Load(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if source != "{{a}}" {
		t.Fatalf("source = %q", source)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(names)
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	if err := s.SetTTL(ctx, "b", time.Minute); err != nil {
		t.Fatal(err)
	}
	ttl, err := s.client.TTL(ctx, templateKey("b")).Result()
	if err != nil {
		t.Fatal(err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Fatalf("TTL = %v, want (0, 1m]", ttl)
	}
	if err := s.SetTTL(ctx, "missing", time.Minute); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("SetTTL on missing template error = %v, want ErrTemplateNotFound", err)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if ok, err := s.Exists(ctx, "a"); err != nil || ok {
		t.Fatalf("Exists after delete = %v, %v", ok, err)
	}
	if _, err := s.Load(ctx, "a"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("Load after delete error = %v, want ErrTemplateNotFound", err)
	}
}

func TestTemplateStoreRejectsEmptyName(t *testing.T) {
	s := NewTemplateStore(nil, zap.NewNop())
	if err := s.Save(context.Background(), "", "x"); err == nil {
		t.Fatal("expected an error")
	}
}
