// Package broker carries "letters changed" notifications from writers to
// live subscriptions. A notification has no payload: subscribers re-query
// and push a full snapshot.
package broker

import (
	"context"

	"github.com/dmitrijs2005/futureletter/internal/server/models"
)

type Broker interface {
	// Publish notifies every current subscriber of owner.
	Publish(ctx context.Context, owner models.Owner) error

	// Subscribe returns a channel that receives at least one value after each
	// Publish for owner. Bursts may be coalesced into a single value. The
	// returned cancel func releases the subscription and closes the channel;
	// it is safe to call more than once.
	Subscribe(ctx context.Context, owner models.Owner) (<-chan struct{}, func(), error)

	Close() error
}

func notify(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
