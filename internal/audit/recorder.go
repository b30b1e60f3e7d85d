package audit

import (
	"context"

	"github.com/govkit/governance-service/internal/events"
)

// SubscribeRecorder turns every published event into an audit entry. The
// dispatcher is synchronous, so entries land before the triggering call
// returns.
func SubscribeRecorder(dispatcher events.Dispatcher, log *Log) {
	handler := func(ctx context.Context, e events.Event) error {
		return log.Append(ctx, e.Actor.UserID, e.Actor.UserName, e.Action, e.EntityType, e.EntityID, e.Details)
	}
	for _, t := range events.AllTypes {
		dispatcher.Subscribe(t, handler)
	}
}
