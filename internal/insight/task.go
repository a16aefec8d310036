package insight

import (
	"context"
	"errors"
)

// Result is the outcome of one analysis.
type Result struct {
	Text string
	Err  error
}

// Canceled reports whether the analysis was stopped by Dispose or by the
// parent context.
func (r Result) Canceled() bool {
	return errors.Is(r.Err, context.Canceled)
}

// Task is a disposable handle on a running analysis.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	result Result
}

// Start runs svc.Analyze on its own goroutine and returns immediately.
func Start(ctx context.Context, svc Service, req Request) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()
		if svc == nil {
			t.result = Result{Err: ErrUnavailable}
			return
		}
		text, err := svc.Analyze(ctx, req)
		t.result = Result{Text: text, Err: err}
	}()
	return t
}

// Done is closed once the analysis has finished or been disposed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns its result.
func (t *Task) Wait() Result {
	<-t.done
	return t.result
}

// Dispose cancels the analysis. It is safe to call more than once.
func (t *Task) Dispose() {
	t.cancel()
}
