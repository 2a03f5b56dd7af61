package services

import (
	"context"
	"fmt"
	"time"

	"petit/internal/cache"
)

// likeCooldown mirrors the UI's like-button debounce on the server side: a
// second toggle by the same user on the same entity inside the window is
// answered with the current state instead of being applied.
const likeCooldown = 300 * time.Millisecond

// AllowLikeToggle reports whether the user may toggle the entity right now
// and, when allowed, opens a new cool-down window. Without redis every
// toggle is allowed; the guard is a mitigation, not a correctness mechanism.
func AllowLikeToggle(userID uint, kind string, entityID uint) bool {
	client := cache.GetClient()
	if client == nil {
		return true
	}

	key := fmt.Sprintf("like:guard:%d:%s:%d", userID, kind, entityID)
	ok, err := client.SetNX(context.Background(), key, 1, likeCooldown).Result()
	if err != nil {
		// Redis trouble must not block likes
		return true
	}
	return ok
}
