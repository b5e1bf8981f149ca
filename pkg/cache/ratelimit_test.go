package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// scripterStub keeps per-key counters in memory and answers EVALSHA/EVAL
// like the fixed-window script.
type scripterStub struct {
	counts map[string]int64
	err    error
}

func newScripterStub() *scripterStub {
	return &scripterStub{counts: make(map[string]int64)}
}

func (s *scripterStub) run(ctx context.Context, keys []string) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}
	s.counts[keys[0]]++
	cmd.SetVal(s.counts[keys[0]])
	return cmd
}

func (s *scripterStub) Eval(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return s.run(ctx, keys)
}

func (s *scripterStub) EvalSha(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return s.run(ctx, keys)
}

func (s *scripterStub) EvalRO(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return s.run(ctx, keys)
}

func (s *scripterStub) EvalShaRO(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return s.run(ctx, keys)
}

func (s *scripterStub) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	cmd := redis.NewBoolSliceCmd(ctx)
	cmd.SetVal(make([]bool, len(hashes)))
	return cmd
}

func (s *scripterStub) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetVal("sha")
	return cmd
}

func TestRateLimiter_Allow(t *testing.T) {
	stub := newScripterStub()
	rl := NewRateLimiter(stub, 2, time.Minute, "booking")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := rl.Allow(ctx, "10.0.0.1")
		if err != nil || !ok {
			t.Fatalf("hit %d: expected allow, got ok=%v err=%v", i+1, ok, err)
		}
	}

	ok, err := rl.Allow(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected third hit to be rejected")
	}

	ok, _ = rl.Allow(ctx, "10.0.0.2")
	if !ok {
		t.Fatalf("expected a different key to have its own window")
	}

	if stub.counts["booking:10.0.0.1"] != 3 {
		t.Fatalf("expected prefixed key, got %v", stub.counts)
	}
}

func TestRateLimiter_Error(t *testing.T) {
	stub := newScripterStub()
	stub.err = errors.New("connection refused")
	rl := NewRateLimiter(stub, 2, time.Minute, "")

	if _, err := rl.Allow(context.Background(), "k"); err == nil {
		t.Fatalf("expected redis error to propagate")
	}
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(newScripterStub(), 0, 0, " ")
	if rl.Limit() != 10 || rl.Window() != time.Minute || rl.prefix != "rl" {
		t.Fatalf("unexpected defaults: %+v", rl)
	}
}
