package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmint/base/backoff"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
)

type runStep struct {
	advance uint64
	err     error
	panic   bool
}

type scriptedRunner struct {
	steps  []runStep
	cancel func()
	b      *backoff.Backoff
	block  uint64
	waits  []time.Duration
}

func (r *scriptedRunner) LastBlockProcessed() uint64 {
	return r.block
}

func (r *scriptedRunner) Run(c bCtx.Ctx) error {
	r.waits = append(r.waits, r.b.Next())
	if len(r.steps) == 0 {
		r.cancel()
		return nil
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	r.block += step.advance
	if step.panic {
		panic("rpc client exploded")
	}
	return step.err
}

func TestRunWithRestartResetsBackoffAfterProgress(t *testing.T) {
	c, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()
	b := backoff.NewExponential(time.Millisecond, time.Second)
	errRpc := errors.New("rpc down")
	r := &scriptedRunner{
		steps: []runStep{
			{err: errRpc},
			{err: errRpc},
			{advance: 50, err: errRpc},
			{panic: true},
		},
		cancel: cancel,
		b:      b,
		block:  100,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		RunWithRestart(c, r, b)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunWithRestart did not return after cancel")
	}

	require.Equal(t, []time.Duration{
		time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		// the third run moved the cursor, waits start over
		2 * time.Millisecond,
		4 * time.Millisecond,
	}, r.waits)
	require.Equal(t, uint64(150), r.block)
}

func TestRunWithRestartStopsWhenCanceledDuringWait(t *testing.T) {
	c, cancel := bCtx.WithCancel(bCtx.Background())
	b := backoff.NewExponential(time.Hour, time.Hour)
	r := &scriptedRunner{
		steps:  []runStep{{err: errors.New("rpc down")}},
		cancel: cancel,
		b:      b,
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		RunWithRestart(c, r, b)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunWithRestart kept waiting after cancel")
	}
	require.Len(t, r.waits, 1)
}
