package videoinfo

import (
	"context"
	"time"
)

// Info is what the YouTube Data API tells us about a video.
type Info struct {
	ID           string
	Title        string
	ChannelTitle string
	Language     string
	Duration     time.Duration
}

// Provider looks a video up by its public URL.
type Provider interface {
	Lookup(ctx context.Context, videoURL string) (Info, error)
}
