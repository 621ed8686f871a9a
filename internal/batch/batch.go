package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
	"github.com/nguyentantai21042004/desc-flow/internal/watcher"
)

// Process reads a VideoRequest from requestPath, generates its description and
// writes <name>.md and <name>.docx to the output folder. The request file is
// archived either way; failed ones get a .failed suffix.
func (r *implRunner) Process(ctx context.Context, requestPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(requestPath), filepath.Ext(requestPath))

	r.logger.Info(ctx, "Starting request: %s", requestPath)

	mdPath, err := r.generate(ctx, requestPath, name)
	if err != nil {
		if archErr := r.moveToArchived(ctx, requestPath, true); archErr != nil {
			r.logger.Warn(ctx, "Failed to archive %s: %v", requestPath, archErr)
		}
		return err
	}

	if err := r.moveToArchived(ctx, requestPath, false); err != nil {
		r.logger.Warn(ctx, "Failed to archive %s: %v", requestPath, err)
	}

	r.logger.Info(ctx, "[DONE] %s -> %s (%s)", name, mdPath, time.Since(startTime).Round(time.Millisecond))
	return nil
}

func (r *implRunner) generate(ctx context.Context, requestPath, name string) (string, error) {
	data, err := os.ReadFile(requestPath)
	if err != nil {
		return "", fmt.Errorf("read request: %w", err)
	}

	var req models.VideoRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return "", fmt.Errorf("decode request %s: %w", name, err)
	}

	desc, err := r.pipeline.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", name, err)
	}

	if err := os.MkdirAll(r.paths.Output, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	title := desc.Title
	if title == "" {
		title = name
	}
	md := renderMarkdown(title, desc, time.Now())

	mdPath := filepath.Join(r.paths.Output, name+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", mdPath, err)
	}

	docxPath := filepath.Join(r.paths.Output, name+".docx")
	if err := markdownToDocx(title, renderBody(desc), docxPath); err != nil {
		r.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
	}

	return mdPath, nil
}

// ProcessPending handles request files left in the input folder while the service was down.
func (r *implRunner) ProcessPending(ctx context.Context) error {
	files, err := discoverRequests(r.paths.Input)
	if err != nil {
		return fmt.Errorf("discover requests: %w", err)
	}

	if len(files) == 0 {
		r.logger.Debug(ctx, "No pending requests in %s", r.paths.Input)
		return nil
	}

	r.logger.Info(ctx, "Found %d pending requests", len(files))

	successCount, failCount := 0, 0
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logger.Info(ctx, "[%d/%d] %s", i+1, len(files), filepath.Base(path))
		if err := r.Process(ctx, path); err != nil {
			r.logger.Error(ctx, "Failed to process %s: %v", path, err)
			failCount++
			continue
		}
		successCount++
	}

	r.logger.Info(ctx, "Pending requests complete: %d success, %d failed", successCount, failCount)
	return nil
}

func discoverRequests(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !watcher.IsRequestFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}
