package batch

import "context"

// Runner turns request files dropped in the input folder into description documents.
type Runner interface {
	// Process handles one request file end to end.
	Process(ctx context.Context, requestPath string) error
	// ProcessPending handles every request already waiting in the input folder.
	ProcessPending(ctx context.Context) error
}
