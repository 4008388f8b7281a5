package models

// YouTubeVideo is an ephemeral search result used to enrich chapters.
// Duration and view count are already human-formatted ("4:13", "1.2M views").
type YouTubeVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ChannelTitle string `json:"channelTitle"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"viewCount"`
	PublishedAt  string `json:"publishedAt"`
	URL          string `json:"url"`
}
