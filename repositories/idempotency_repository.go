package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// How long a checkout idempotency key stays deduplicated. A retry after
// the window creates a fresh order, which matches the original terminal
// failure semantics.
const idempotencyTTL = 24 * time.Hour

// IdempotencyRepository maps client-generated checkout keys to the order
// they produced, so a resubmitted request returns the existing order
// instead of inserting a duplicate.
type IdempotencyRepository struct {
	client *redis.Client
}

func NewIdempotencyRepository(client *redis.Client) *IdempotencyRepository {
	return &IdempotencyRepository{client: client}
}

func (r *IdempotencyRepository) key(scope, key string) string {
	return "idem:order:" + scope + ":" + key
}

func (r *IdempotencyRepository) Get(ctx context.Context, scope, key string) (int, bool, error) {
	value, err := r.client.Get(ctx, r.key(scope, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	orderID, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, err
	}
	return orderID, true, nil
}

func (r *IdempotencyRepository) Set(ctx context.Context, scope, key string, orderID int) error {
	return r.client.SetNX(ctx, r.key(scope, key), strconv.Itoa(orderID), idempotencyTTL).Err()
}
