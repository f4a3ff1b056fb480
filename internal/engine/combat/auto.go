package combat

import (
	"context"
	"time"
)

// DefaultAutoAttackInterval matches the pace of a manual click
const DefaultAutoAttackInterval = 800 * time.Millisecond

// AutoAttack attacks once per tick until either side is defeated or ctx is
// done. No tick fires after a defeat. onExchange, when set, sees every
// exchange as it happens.
//
// It returns the last exchange, and ctx.Err() if it was stopped early.
func (e *Encounter) AutoAttack(ctx context.Context, interval time.Duration, onExchange func(Exchange)) (Exchange, error) {
	if interval <= 0 {
		interval = DefaultAutoAttackInterval
	}

	last := Exchange{Phase: e.phase, PlayerHealth: e.player.Health}
	if e.Over() {
		return last, nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
			last = e.Attack()
			if onExchange != nil {
				onExchange(last)
			}
			if !last.Applied || e.Over() {
				return last, nil
			}
		}
	}
}
