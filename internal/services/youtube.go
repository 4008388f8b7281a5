package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/skillforge/skillforge-backend/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// videosPerQuery is how many results each search query contributes to
// the chapter video pool
const videosPerQuery = 2

// searcher is the seam between the video finder and the YouTube API,
// so tests can inject fakes
type searcher interface {
	search(ctx context.Context, query string, max int64) ([]models.YouTubeVideo, error)
}

// VideoFinderConfig carries the YouTube credential. An empty key gives a
// finder that returns empty results instead of failing - video
// enrichment is best-effort by contract.
type VideoFinderConfig struct {
	APIKey string
}

// VideoFinder locates YouTube videos to enrich generated chapters
type VideoFinder struct {
	s searcher // nil when unconfigured
}

// NewVideoFinder builds the finder, or an inert one when no key is set
func NewVideoFinder(ctx context.Context, cfg VideoFinderConfig) (*VideoFinder, error) {
	if cfg.APIKey == "" {
		log.Println("Warning: YOUTUBE_API_KEY is not set, video enrichment disabled")
		return &VideoFinder{}, nil
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}

	return &VideoFinder{s: &youtubeSearcher{svc: svc}}, nil
}

// IsConfigured reports whether searches will actually hit the API
func (f *VideoFinder) IsConfigured() bool {
	return f.s != nil
}

// SearchVideos runs one search query. Unconfigured finders return empty
// results without error.
func (f *VideoFinder) SearchVideos(ctx context.Context, query string, max int64) ([]models.YouTubeVideo, error) {
	if f.s == nil {
		return nil, nil
	}
	return f.s.search(ctx, query, max)
}

// FindVideosForChapter builds a small query set for a chapter and folds
// the results into a deduplicated list. First occurrence of a video wins,
// a failed query contributes nothing, and at most 3 videos come back.
func (f *VideoFinder) FindVideosForChapter(ctx context.Context, chapterTitle string, topics []string, category string) []models.YouTubeVideo {
	if f.s == nil {
		return nil
	}

	queries := []string{
		fmt.Sprintf("%s %s tutorial", chapterTitle, category),
		fmt.Sprintf("%s for beginners", chapterTitle),
	}
	for _, topic := range topics {
		if len(queries) >= 4 {
			break
		}
		queries = append(queries, fmt.Sprintf("%s in %s explained", topic, chapterTitle))
	}

	var all []models.YouTubeVideo
	seen := make(map[string]bool)

	for _, query := range queries {
		videos, err := f.s.search(ctx, query, videosPerQuery)
		if err != nil {
			log.Printf("[VideoFinder] Query %q failed: %v", query, err)
			continue
		}
		for _, video := range videos {
			if seen[video.ID] {
				continue
			}
			seen[video.ID] = true
			all = append(all, video)
		}
	}

	if len(all) > 3 {
		all = all[:3]
	}
	return all
}

// youtubeSearcher is the real API-backed implementation
type youtubeSearcher struct {
	svc *youtube.Service
}

func (y *youtubeSearcher) search(ctx context.Context, query string, max int64) ([]models.YouTubeVideo, error) {
	searchResp, err := y.svc.Search.List([]string{"snippet"}).
		Context(ctx).
		Q(query).
		Type("video").
		MaxResults(max).
		Order("relevance").
		VideoDuration("medium").
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}
	if len(searchResp.Items) == 0 {
		return nil, nil
	}

	// second call for duration and view counts
	var ids []string
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}

	details := make(map[string]*youtube.Video)
	if len(ids) > 0 {
		detailsResp, err := y.svc.Videos.List([]string{"contentDetails", "statistics"}).
			Context(ctx).
			Id(ids...).
			Do()
		if err != nil {
			return nil, fmt.Errorf("youtube details lookup failed: %w", err)
		}
		for _, item := range detailsResp.Items {
			details[item.Id] = item
		}
	}

	var videos []models.YouTubeVideo
	for _, item := range searchResp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}

		videoID := item.Id.VideoId
		isoDuration := "PT0M"
		viewCount := "0"
		if d, ok := details[videoID]; ok {
			if d.ContentDetails != nil && d.ContentDetails.Duration != "" {
				isoDuration = d.ContentDetails.Duration
			}
			if d.Statistics != nil {
				viewCount = strconv.FormatUint(d.Statistics.ViewCount, 10)
			}
		}

		videos = append(videos, models.YouTubeVideo{
			ID:           videoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: pickThumbnail(item.Snippet.Thumbnails),
			ChannelTitle: item.Snippet.ChannelTitle,
			Duration:     formatDuration(isoDuration),
			ViewCount:    formatViewCount(viewCount),
			PublishedAt:  formatPublishedAt(item.Snippet.PublishedAt),
			URL:          "https://www.youtube.com/watch?v=" + videoID,
		})
	}

	return videos, nil
}

func pickThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.Medium != nil {
		return t.Medium.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}

var isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// formatDuration converts ISO 8601 duration (PT4M13S) to a readable
// format (4:13)
func formatDuration(duration string) string {
	m := isoDurationRe.FindStringSubmatch(duration)
	if m == nil {
		return "0:00"
	}

	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// formatViewCount shortens raw counts to the familiar 1.5M / 2.3K form
func formatViewCount(viewCount string) string {
	count, err := strconv.ParseInt(viewCount, 10, 64)
	if err != nil {
		count = 0
	}

	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d views", count)
	}
}

func formatPublishedAt(published string) string {
	t, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return published
	}
	return t.Format("1/2/2006")
}

func zeroIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return s
}
