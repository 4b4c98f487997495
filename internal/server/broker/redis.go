package broker

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/futureletter/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "futureletter:changes:"

// Redis shares notifications between server replicas over Redis pub/sub.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// DialRedis connects to addr and verifies the connection with PING.
func DialRedis(ctx context.Context, addr string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedis(rdb), nil
}

func channelName(owner models.Owner) string {
	return channelPrefix + owner.AppID + ":" + owner.UserID
}

func (r *Redis) Publish(ctx context.Context, owner models.Owner) error {
	if err := r.rdb.Publish(ctx, channelName(owner), "changed").Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

func (r *Redis) Subscribe(ctx context.Context, owner models.Owner) (<-chan struct{}, func(), error) {
	ps := r.rdb.Subscribe(ctx, channelName(owner))

	// Wait for the confirmation so a Publish issued right after Subscribe
	// returns is not lost.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan struct{}, 1)
	done := make(chan struct{})
	msgs := ps.Channel()

	go func() {
		defer close(out)
		for {
			select {
			case _, ok := <-msgs:
				if !ok {
					return
				}
				notify(out)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = ps.Close()
		})
	}

	return out, cancel, nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
