package cache

import (
	"context"
	"fmt"
	"time"
)

// Key prefixes and TTLs for cached entities. Users change rarely and are
// read on nearly every request; posts churn with likes and comments, so
// they live longer only as denormalized snapshots.
const (
	UserKeyPrefix = "user:"
	PostKeyPrefix = "post:"

	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
)

func UserKey(id uint) string {
	return fmt.Sprintf("%s%d", UserKeyPrefix, id)
}

func PostKey(id uint) string {
	return fmt.Sprintf("%s%d", PostKeyPrefix, id)
}

// Invalidate removes the given keys. Best effort; errors are swallowed
// because a stale entry expires on its own TTL.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateUser drops a user's cached profile.
func InvalidateUser(ctx context.Context, id uint) {
	Invalidate(ctx, UserKey(id))
}

// InvalidatePost drops a post's cached snapshot.
func InvalidatePost(ctx context.Context, id uint) {
	Invalidate(ctx, PostKey(id))
}
