package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a handled request out of the input folder so it won't be re-processed.
func (r *implRunner) moveToArchived(ctx context.Context, requestPath string, failed bool) error {
	if err := os.MkdirAll(r.paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(r.paths.Archived, filepath.Base(requestPath))
	if failed {
		destPath += ".failed"
	}

	r.logger.Debug(ctx, "Archiving request: %s -> %s", requestPath, destPath)

	if err := os.Rename(requestPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
