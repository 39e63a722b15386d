// Package workers runs the client's background jobs next to the screens:
// the periodic vault sync and the captcha callback listener.
package workers

import "context"

// Worker is a background job owned by the client run.
//
// Start returns immediately and keeps the job running until ctx is done or
// Stop is called. Stop waits for the job to finish and may be called more
// than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
