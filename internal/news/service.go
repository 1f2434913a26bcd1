package news

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pulsefeed/pulsefeed/internal/observability"
)

const (
	// perCategoryLimit caps each category's contribution before merging.
	perCategoryLimit = 5
	// maxArticles caps the merged result after deduplication.
	maxArticles = 20
)

// Service aggregates feed pages according to a user's preference list.
//
// The policy degrades gracefully: a failed category is skipped, and only a
// total failure across all categories falls back to the unfiltered feed.
// No per-category failure ever surfaces to the caller.
type Service struct {
	logger  *slog.Logger
	client  FeedClient
	cache   *PageCache
	region  string
	metrics *observability.Metrics
}

// NewService constructs the aggregator. cache and metrics may be nil.
func NewService(logger *slog.Logger, client FeedClient, cache *PageCache, region string, metrics *observability.Metrics) *Service {
	return &Service{logger: logger, client: client, cache: cache, region: region, metrics: metrics}
}

// fetchPage loads one provider page through the cache, counting the attempt.
func (s *Service) fetchPage(ctx context.Context, category string) ([]Article, error) {
	var page []Article
	err := s.cache.Fetch(ctx, pageKey(category, s.region), &page, func(ctx context.Context) (any, error) {
		return s.client.FetchPage(ctx, category)
	})
	if s.metrics != nil {
		label := category
		if label == "" {
			label = DefaultCategory
		}
		s.metrics.ObserveUpstreamFetch(label, err == nil)
	}
	return page, err
}

// AggregateForPreferences fetches a page per resolved preference category,
// merges the first perCategoryLimit articles of each in preference order,
// deduplicates by title keeping the first occurrence, and truncates to
// maxArticles. Empty preferences and total upstream failure both yield the
// unfiltered feed.
func (s *Service) AggregateForPreferences(ctx context.Context, preferences []string) ([]Article, error) {
	if len(preferences) == 0 {
		return s.fetchPage(ctx, "")
	}

	type pageResult struct {
		articles []Article
		err      error
	}
	results := make([]pageResult, len(preferences))

	// Category fetches are independent, so they run concurrently. Results
	// are slotted by index to restore preference order before merging.
	var g errgroup.Group
	for i, preference := range preferences {
		i := i
		category := ResolveCategory(preference)
		g.Go(func() error {
			articles, err := s.fetchPage(ctx, category)
			results[i] = pageResult{articles: articles, err: err}
			return nil
		})
	}
	_ = g.Wait()

	combined := make([]Article, 0, len(preferences)*perCategoryLimit)
	failed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			s.logger.Warn("category fetch failed",
				slog.String("category", ResolveCategory(preferences[i])),
				slog.Any("error", res.err))
			continue
		}
		page := res.articles
		if len(page) > perCategoryLimit {
			page = page[:perCategoryLimit]
		}
		combined = append(combined, page...)
	}

	if failed == len(preferences) {
		s.logger.Warn("all category fetches failed, serving unfiltered feed")
		return s.fetchPage(ctx, "")
	}

	merged := dedupeByTitle(combined)
	if len(merged) > maxArticles {
		merged = merged[:maxArticles]
	}
	return merged, nil
}

// dedupeByTitle is a stable, order-preserving filter keeping the first
// article seen for each title.
func dedupeByTitle(articles []Article) []Article {
	seen := make(map[string]struct{}, len(articles))
	out := articles[:0:0]
	for _, article := range articles {
		if _, dup := seen[article.Title]; dup {
			continue
		}
		seen[article.Title] = struct{}{}
		out = append(out, article)
	}
	return out
}
