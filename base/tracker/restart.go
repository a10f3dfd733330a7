package tracker

import (
	"github.com/x-xyz/nftmint/base/backoff"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/goroutine"
	"github.com/x-xyz/nftmint/base/log"
)

// Restartable is satisfied by *EventTracker
type Restartable interface {
	Run(c bCtx.Ctx) error
	LastBlockProcessed() uint64
}

// RunWithRestart restarts t after errors and panics until c is done.
// The backoff starts over once a run has moved the cursor forward.
func RunWithRestart(c bCtx.Ctx, t Restartable, b *backoff.Backoff) {
	for {
		from := t.LastBlockProcessed()
		var runErr error
		panicked := goroutine.RecoverableGo(c, func() {
			runErr = t.Run(c)
		})
		if p := <-panicked; p == nil && runErr == nil {
			// Run only returns nil once c is canceled
			return
		}
		if c.Err() != nil {
			return
		}
		if t.LastBlockProcessed() > from {
			b.Reset()
		}
		c.WithFields(log.Fields{"err": runErr, "wait": b.Next().String()}).Error("tracker stopped, restarting")
		if err := b.Wait(c); err != nil {
			return
		}
	}
}
