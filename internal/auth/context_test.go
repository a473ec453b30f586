package auth

import (
	"context"
	"testing"
)

func TestUserIDContextRoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	userID, ok := UserIDFromContext(ctx)
	if !ok || userID != 42 {
		t.Errorf("UserIDFromContext = (%d, %v), want (42, true)", userID, ok)
	}

	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Error("UserIDFromContext found a value in an empty context")
	}
}
