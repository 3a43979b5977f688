package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	if !ok || got != id {
		t.Errorf("got (%v, %v), want (%v, true)", got, ok, id)
	}

	if _, ok := UserIDFromCtx(context.Background()); ok {
		t.Error("expected false for empty context")
	}

	if _, ok := UserIDFromCtx(WithUserID(context.Background(), uuid.Nil)); ok {
		t.Error("expected false for nil UUID")
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Errorf("got %q, want %q", got, "req-1")
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestAuthToken(t *testing.T) {
	t.Parallel()

	ctx := WithAuthToken(context.Background(), "bearer-token")
	got, ok := AuthTokenFromCtx(ctx)
	if !ok || got != "bearer-token" {
		t.Errorf("got %q ok=%v, want %q", got, ok, "bearer-token")
	}
	if got, ok := AuthTokenFromCtx(context.Background()); ok {
		t.Errorf("got %q, want no token", got)
	}
	if got, ok := AuthTokenFromCtx(WithAuthToken(context.Background(), "")); ok {
		t.Errorf("got %q, want empty token treated as absent", got)
	}
}
