package concurrent

import (
	"sync"
)

// Async runs exec in a new go routine and returns once the go routine has started.
// The returned channel is closed when exec returns.
func Async(exec func()) <-chan struct{} {
	started := new(sync.WaitGroup)
	started.Add(1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		started.Done()
		exec()
	}()
	started.Wait()
	return done
}
