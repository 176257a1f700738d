package eventsourcing

import "context"

// Projection builds a read model from envelopes.
type Projection interface {
	Apply(ctx context.Context, env Envelope) error
	Reset(ctx context.Context) error
}

// Rebuild resets p and feeds it history in order.
func Rebuild(ctx context.Context, p Projection, history []Envelope) error {
	if err := p.Reset(ctx); err != nil {
		return err
	}
	for _, env := range history {
		if err := p.Apply(ctx, env); err != nil {
			return err
		}
	}
	return nil
}
