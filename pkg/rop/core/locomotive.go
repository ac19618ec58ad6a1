package core

import (
	"context"
	"sync"

	"github.com/ib-77/faultline/pkg/fault"
	"github.com/ib-77/faultline/pkg/rop"
)

// Engine processes one unit of work.
type Engine[In, Out, E any] func(ctx context.Context, input rop.Result[In, E]) rop.Result[Out, E]

type Handlers[In, Out, E any] struct {
	// OnCancel receives the input channel when ctx ends; remaining values
	// have not been processed.
	OnCancel func(ctx context.Context, inputCh <-chan rop.Result[In, E])
	// OnFault receives the unit whose processing raised a fault.
	OnFault func(ctx context.Context, input rop.Result[In, E], sig *fault.Signal)
	// OnSuccess is called after a result was delivered downstream.
	OnSuccess func(ctx context.Context, out rop.Result[Out, E])
}

func Locomotive[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E],
	engine Engine[In, Out, E], handlers Handlers[In, Out, E], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			var out rop.Result[Out, E]
			if sig := fault.Catch(func() {
				out = engine(ctx, in)
				fault.Assert(out.IsValid(), "engine returned a Result that was not built by Success or Fail")
			}); sig != nil {
				if handlers.OnFault != nil {
					handlers.OnFault(ctx, in, sig)
				}
				continue
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh)
				}
				return
			case outCh <- out:
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, out)
				}
			}
		}
	}
}

// Train starts lines locomotives over inputCh and closes the returned
// channel once all of them stop.
func Train[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine Engine[In, Out, E], handlers Handlers[In, Out, E], lines int) <-chan rop.Result[Out, E] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go Locomotive[In, Out, E](ctx, inputCh, out, engine, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
