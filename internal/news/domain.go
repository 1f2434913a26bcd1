package news

// Article is a normalized feed item. Records are built fresh from provider
// payloads on every aggregation and never persisted; equality for
// deduplication is by title only.
type Article struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage,omitempty"`
}
