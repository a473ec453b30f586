package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/pulse-assessments/backend/internal/models"
)

func testCache(t *testing.T) (RunCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRunCache(client), mr
}

func TestRunCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	responses := []models.Response{
		{QuestionID: "q1", Category: "workload", Dimension: "volume", Score: 4, TimeTakenMs: 3000},
		{QuestionID: "q2", Category: "emotional", Dimension: "exhaustion", Score: 2, TimeTakenMs: 4500},
	}

	if err := c.SetResponses(ctx, "run-1", responses); err != nil {
		t.Fatalf("SetResponses: %v", err)
	}

	got, err := c.GetResponses(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetResponses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d responses, want 2", len(got))
	}
	if got[0].QuestionID != "q1" || got[1].Score != 2 {
		t.Errorf("round trip mangled responses: %+v", got)
	}
}

func TestRunCacheMissReturnsNil(t *testing.T) {
	c, _ := testCache(t)

	got, err := c.GetResponses(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetResponses on miss: %v", err)
	}
	if got != nil {
		t.Errorf("miss returned %v, want nil", got)
	}
}

func TestRunCacheInvalidate(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	responses := []models.Response{{QuestionID: "q1", Category: "c", Dimension: "d", Score: 1}}
	if err := c.SetResponses(ctx, "run-1", responses); err != nil {
		t.Fatalf("SetResponses: %v", err)
	}
	if err := c.Invalidate(ctx, "run-1"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	got, err := c.GetResponses(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetResponses after invalidate: %v", err)
	}
	if got != nil {
		t.Errorf("invalidated key returned %v, want nil", got)
	}
}

func TestRunCacheEntriesExpire(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	responses := []models.Response{{QuestionID: "q1", Category: "c", Dimension: "d", Score: 1}}
	if err := c.SetResponses(ctx, "run-1", responses); err != nil {
		t.Fatalf("SetResponses: %v", err)
	}

	mr.FastForward(runTTL + 1)

	got, err := c.GetResponses(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetResponses after expiry: %v", err)
	}
	if got != nil {
		t.Errorf("expired key returned %v, want nil", got)
	}
}
