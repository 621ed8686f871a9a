package videoinfo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/sosodev/duration"
)

// ErrNoVideoID is returned when the URL does not point at a YouTube video.
var ErrNoVideoID = errors.New("no youtube video id in url")

var reVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Lookup fetches title, channel and duration for the video behind videoURL.
func (p *youtubeProvider) Lookup(ctx context.Context, videoURL string) (Info, error) {
	id, err := VideoID(videoURL)
	if err != nil {
		return Info{}, err
	}

	response, err := p.service.Videos.List([]string{"snippet", "contentDetails"}).Id(id).Context(ctx).Do()
	if err != nil {
		return Info{}, fmt.Errorf("error in call youtube api: %w", err)
	}
	if len(response.Items) == 0 {
		return Info{}, fmt.Errorf("video %s not found", id)
	}

	item := response.Items[0]
	info := Info{ID: item.Id}

	if item.Snippet != nil {
		info.Title = item.Snippet.Title
		info.ChannelTitle = item.Snippet.ChannelTitle
		info.Language = item.Snippet.DefaultAudioLanguage
	}

	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		d, err := duration.Parse(item.ContentDetails.Duration)
		if err != nil {
			p.logger.Warn(ctx, "Unparseable duration %q for video %s: %v", item.ContentDetails.Duration, id, err)
		} else {
			info.Duration = d.ToTimeDuration()
		}
	}

	return info, nil
}

// VideoID extracts the 11 character video id from the usual YouTube URL shapes.
func VideoID(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", ErrNoVideoID
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}
		if len(segments) >= 2 {
			switch segments[0] {
			case "shorts", "embed", "live", "v":
				id = segments[1]
			}
		}
	}

	if !reVideoID.MatchString(id) {
		return "", ErrNoVideoID
	}
	return id, nil
}
