package holdstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/pos/pkg/cart"
)

const DefaultKey = "fabzclean:pos:held-cart"

type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, key string) *Redis {
	if key == "" {
		key = DefaultKey
	}
	return &Redis{client: client, key: key}
}

func (r *Redis) Put(c context.Context, snapshot cart.Cart) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed marshaling held cart with error=%w", err)
	}
	// No TTL, a held cart stays until restored or overwritten.
	if err := r.client.Set(c, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed storing held cart with error=%w", err)
	}
	return nil
}

func (r *Redis) Get(c context.Context) (cart.Cart, error) {
	data, err := r.client.Get(c, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.Cart{}, inErrors.ErrNoHeldCart
		}
		return cart.Cart{}, fmt.Errorf("failed fetching held cart with error=%w", err)
	}

	var snapshot cart.Cart
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return cart.Cart{}, fmt.Errorf("failed unmarshaling held cart with error=%w", err)
	}
	return snapshot, nil
}

func (r *Redis) Delete(c context.Context) error {
	if err := r.client.Del(c, r.key).Err(); err != nil {
		return fmt.Errorf("failed deleting held cart with error=%w", err)
	}
	return nil
}
