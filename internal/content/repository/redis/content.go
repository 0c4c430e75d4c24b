package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"school-assistant/internal/content/repository"
	"school-assistant/internal/model"
)

type videoRecord struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Topic string `json:"topic,omitempty"`
}

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.ContentRecord, error) {
	seen := make(map[string]bool)
	var records []model.ContentRecord

	for _, topic := range opt.Topics {
		raw, err := r.lrange(ctx, TopicKey(r.prefix, topic))
		if err != nil {
			return nil, err
		}
		for _, item := range raw {
			var rec model.ContentRecord
			if err := json.Unmarshal([]byte(item), &rec); err != nil {
				r.l.Warnf(ctx, "content/repository/redis.Search: skip malformed record in %s: %v", topic, err)
				continue
			}
			key := rec.SourceURL
			if key == "" {
				key = rec.Title
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			if rec.Topic == "" {
				rec.Topic = topic
			}
			records = append(records, rec)
		}
	}

	keywords := lowerAll(opt.Keywords)
	scores := make([]int, len(records))
	for i, rec := range records {
		scores[i] = 3*hits(rec.Title, keywords) + 2*hits(rec.Description, keywords) + hits(rec.Body, keywords)
	}
	sortByScore(len(records), scores, func(i, j int) { records[i], records[j] = records[j], records[i] })

	if opt.Limit > 0 && len(records) > opt.Limit {
		records = records[:opt.Limit]
	}
	return records, nil
}

func (r *implRepository) ListVideos(ctx context.Context, opt repository.ListVideosOptions) ([]model.Video, error) {
	raw, err := r.lrange(ctx, VideosKey(r.prefix))
	if err != nil {
		return nil, err
	}

	keywords := lowerAll(opt.Keywords)
	var videos []model.Video
	var scores []int
	for _, item := range raw {
		var rec videoRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil || rec.URL == "" {
			continue
		}
		videos = append(videos, model.Video{Title: rec.Title, URL: rec.URL})
		scores = append(scores, 2*hits(rec.Title, keywords)+hits(rec.Topic, keywords))
	}
	sortByScore(len(videos), scores, func(i, j int) { videos[i], videos[j] = videos[j], videos[i] })

	if opt.Limit > 0 && len(videos) > opt.Limit {
		videos = videos[:opt.Limit]
	}
	return videos, nil
}

func (r *implRepository) lrange(ctx context.Context, key string) ([]string, error) {
	raw, err := r.client.LRange(ctx, key, 0, maxPerTopic-1).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "content/repository/redis.lrange %s: %v", key, err)
		return nil, repository.ErrFailedToRead
	}
	return raw, nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// hits counts keywords contained in text.
func hits(text string, keywords []string) int {
	if text == "" || len(keywords) == 0 {
		return 0
	}
	text = strings.ToLower(text)
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}

// sortByScore orders items by descending score, keeping list order on ties.
func sortByScore(n int, scores []int, swap func(i, j int)) {
	sort.Stable(scored{n: n, scores: scores, swap: swap})
}

type scored struct {
	n      int
	scores []int
	swap   func(i, j int)
}

func (s scored) Len() int           { return s.n }
func (s scored) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s scored) Swap(i, j int) {
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
	s.swap(i, j)
}
