package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/symptor-ai/symptor/pkg/common/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

type fakeLister struct {
	calls      int
	conditions []Condition
	err        error
}

func (f *fakeLister) List(ctx context.Context) ([]Condition, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.conditions, nil
}

func TestCacheServesSnapshotWithinTTL(t *testing.T) {
	source := &fakeLister{conditions: DefaultConditions()}
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(source, time.Hour, func() time.Time { return clock })

	ctx := context.Background()
	if _, err := cache.Conditions(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock = clock.Add(59 * time.Minute)
	if _, err := cache.Conditions(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected a single fetch within the TTL, got %d", source.calls)
	}
}

func TestCacheRefreshesWhenStale(t *testing.T) {
	source := &fakeLister{conditions: DefaultConditions()}
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(source, time.Hour, func() time.Time { return clock })

	ctx := context.Background()
	if _, err := cache.Conditions(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock = clock.Add(61 * time.Minute)
	if _, err := cache.Conditions(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 2 {
		t.Fatalf("expected refetch after TTL, got %d calls", source.calls)
	}
}

func TestCacheServesStaleOnRefreshFailure(t *testing.T) {
	source := &fakeLister{conditions: DefaultConditions()}
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(source, time.Hour, func() time.Time { return clock })

	ctx := context.Background()
	if _, err := cache.Conditions(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source.err = errors.New("connection refused")
	clock = clock.Add(2 * time.Hour)
	conditions, err := cache.Conditions(ctx)
	if err != nil {
		t.Fatalf("expected stale snapshot, got error: %v", err)
	}
	if len(conditions) != len(DefaultConditions()) {
		t.Fatalf("expected stale snapshot contents, got %d conditions", len(conditions))
	}
}

func TestCacheErrorsWithoutSnapshot(t *testing.T) {
	source := &fakeLister{err: errors.New("connection refused")}
	cache := NewCache(source, time.Hour, nil)
	if _, err := cache.Conditions(context.Background()); err == nil {
		t.Fatal("expected error when no snapshot exists")
	}
}

func TestCacheInvalidate(t *testing.T) {
	source := &fakeLister{conditions: DefaultConditions()}
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCache(source, time.Hour, func() time.Time { return clock })

	ctx := context.Background()
	cache.Conditions(ctx)
	cache.Invalidate()
	cache.Conditions(ctx)
	if source.calls != 2 {
		t.Fatalf("expected invalidation to force refetch, got %d calls", source.calls)
	}
}

func TestConditionValidate(t *testing.T) {
	cond := Condition{Name: "X", Symptoms: []string{"a"}, Severity: "Severe"}
	if err := cond.Validate(); err == nil {
		t.Fatal("expected invalid severity to fail validation")
	}
	cond.Severity = "High"
	if err := cond.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cond.Symptoms = nil
	if err := cond.Validate(); err == nil {
		t.Fatal("expected empty symptom list to fail validation")
	}
}
