package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/skillforge/skillforge-backend/internal/models"
)

// fakeSearcher returns scripted results per query
type fakeSearcher struct {
	results map[string][]models.YouTubeVideo
	errs    map[string]error
	queries []string
}

func (f *fakeSearcher) search(ctx context.Context, query string, max int64) ([]models.YouTubeVideo, error) {
	f.queries = append(f.queries, query)
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	videos := f.results[query]
	if int64(len(videos)) > max {
		videos = videos[:max]
	}
	return videos, nil
}

func video(id string) models.YouTubeVideo {
	return models.YouTubeVideo{ID: id, URL: "https://www.youtube.com/watch?v=" + id}
}

func TestFindVideosForChapterQuerySet(t *testing.T) {
	fake := &fakeSearcher{}
	finder := &VideoFinder{s: fake}

	finder.FindVideosForChapter(context.Background(), "Goroutines", []string{"channels", "select", "sync", "extra"}, "Go")

	want := []string{
		"Goroutines Go tutorial",
		"Goroutines for beginners",
		"channels in Goroutines explained",
		"select in Goroutines explained",
	}
	if len(fake.queries) != len(want) {
		t.Fatalf("ran %d queries, want %d: %v", len(fake.queries), len(want), fake.queries)
	}
	for i, q := range want {
		if fake.queries[i] != q {
			t.Errorf("query %d = %q, want %q", i, fake.queries[i], q)
		}
	}
}

func TestFindVideosForChapterNoTopics(t *testing.T) {
	fake := &fakeSearcher{}
	finder := &VideoFinder{s: fake}

	finder.FindVideosForChapter(context.Background(), "Intro", nil, "Go")
	if len(fake.queries) != 2 {
		t.Errorf("ran %d queries, want 2 without topics", len(fake.queries))
	}
}

func TestFindVideosForChapterDedupFirstSeen(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.YouTubeVideo{
		"Goroutines Go tutorial":   {video("a"), video("b")},
		"Goroutines for beginners": {video("b"), video("a")},
	}}
	finder := &VideoFinder{s: fake}

	videos := finder.FindVideosForChapter(context.Background(), "Goroutines", nil, "Go")
	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2 after dedup", len(videos))
	}
	if videos[0].ID != "a" || videos[1].ID != "b" {
		t.Errorf("order = %s, %s; first occurrence must win", videos[0].ID, videos[1].ID)
	}
}

func TestFindVideosForChapterTopThree(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.YouTubeVideo{
		"Goroutines Go tutorial":           {video("a"), video("b")},
		"Goroutines for beginners":         {video("c"), video("d")},
		"channels in Goroutines explained": {video("e")},
	}}
	finder := &VideoFinder{s: fake}

	videos := finder.FindVideosForChapter(context.Background(), "Goroutines", []string{"channels"}, "Go")
	if len(videos) != 3 {
		t.Fatalf("got %d videos, want 3", len(videos))
	}
	for i, want := range []string{"a", "b", "c"} {
		if videos[i].ID != want {
			t.Errorf("video %d = %s, want %s", i, videos[i].ID, want)
		}
	}
}

func TestFindVideosForChapterFailedQueryContributesNothing(t *testing.T) {
	fake := &fakeSearcher{
		results: map[string][]models.YouTubeVideo{
			"Goroutines for beginners": {video("b")},
		},
		errs: map[string]error{
			"Goroutines Go tutorial": errors.New("quota exceeded"),
		},
	}
	finder := &VideoFinder{s: fake}

	videos := finder.FindVideosForChapter(context.Background(), "Goroutines", nil, "Go")
	if len(videos) != 1 || videos[0].ID != "b" {
		t.Errorf("fold should continue past a failed query, got %v", videos)
	}
}

func TestUnconfiguredFinder(t *testing.T) {
	finder := &VideoFinder{}

	videos, err := finder.SearchVideos(context.Background(), "anything", 5)
	if err != nil {
		t.Errorf("unconfigured search must not error: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("unconfigured search returned results: %v", videos)
	}
	if got := finder.FindVideosForChapter(context.Background(), "T", nil, "C"); len(got) != 0 {
		t.Errorf("unconfigured chapter lookup returned results: %v", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT4M13S", "4:13"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"PT10M", "10:00"},
		{"PT0M", "0:00"},
		{"garbage", "0:00"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.iso); got != tc.want {
			t.Errorf("formatDuration(%q) = %q, want %q", tc.iso, got, tc.want)
		}
	}
}

func TestFormatViewCount(t *testing.T) {
	tests := []struct {
		count string
		want  string
	}{
		{"1500000", "1.5M views"},
		{"1000000", "1.0M views"},
		{"2300", "2.3K views"},
		{"1000", "1.0K views"},
		{"999", "999 views"},
		{"0", "0 views"},
		{"not-a-number", "0 views"},
	}
	for _, tc := range tests {
		if got := formatViewCount(tc.count); got != tc.want {
			t.Errorf("formatViewCount(%q) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestFormatPublishedAt(t *testing.T) {
	if got := formatPublishedAt("2024-03-09T15:04:05Z"); got != "3/9/2024" {
		t.Errorf("formatPublishedAt = %q, want 3/9/2024", got)
	}
	// unparseable input passes through
	if got := formatPublishedAt("yesterday"); got != "yesterday" {
		t.Errorf("formatPublishedAt fallback = %q", got)
	}
}

func TestSearchRespectsMax(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.YouTubeVideo{}}
	for i := 0; i < 5; i++ {
		fake.results["q"] = append(fake.results["q"], video(fmt.Sprintf("v%d", i)))
	}
	finder := &VideoFinder{s: fake}

	videos, err := finder.SearchVideos(context.Background(), "q", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(videos) != 2 {
		t.Errorf("got %d videos, want 2", len(videos))
	}
}
