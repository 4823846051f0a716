package coreintegration

import "context"

// SetupOperation is the outcome of one setup run. Callers that join a pending run share the same operation.
type SetupOperation struct {
	done chan struct{}
	err  error
}

func newSetupOperation() *SetupOperation {
	return &SetupOperation{done: make(chan struct{})}
}

func (o *SetupOperation) finish(err error) {
	o.err = err
	close(o.done)
}

// Done is closed once the run has finished.
func (o *SetupOperation) Done() <-chan struct{} {
	return o.done
}

// Err returns the run's error, or nil while it is still pending.
func (o *SetupOperation) Err() error {
	select {
	case <-o.done:
		return o.err
	default:
		return nil
	}
}

// Wait blocks until the run finishes or ctx is done. Giving up on the wait does not stop the run.
func (o *SetupOperation) Wait(ctx context.Context) error {
	select {
	case <-o.done:
		return o.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Completed returns an operation that has already finished with err.
func Completed(err error) *SetupOperation {
	op := newSetupOperation()
	op.finish(err)
	return op
}
