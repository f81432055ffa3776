// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker,
// such as the connectivity prober.
//
// Start must not block: implementations spawn their own goroutine and keep
// running until ctx is cancelled or Stop is called. Stop waits for that
// goroutine to exit and is safe to call more than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
