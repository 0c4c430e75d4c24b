package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"school-assistant/internal/content/repository"
	"school-assistant/pkg/log"
)

const (
	DefaultKeyPrefix = "content"

	// maxPerTopic bounds how much of each topic list is read.
	maxPerTopic = 50
)

// Client is the subset of *redis.Client the reader needs.
type Client interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

type implRepository struct {
	client Client
	prefix string
	l      log.Logger
}

// New creates a Redis-backed content Reader. Records are JSON values in
// lists keyed "<prefix>:topic:<topic>" and "<prefix>:videos".
func New(client Client, prefix string, l log.Logger) repository.Reader {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &implRepository{client: client, prefix: prefix, l: l}
}

// TopicKey is the list key holding records of topic.
func TopicKey(prefix, topic string) string {
	return prefix + ":topic:" + topic
}

// VideosKey is the list key holding video records.
func VideosKey(prefix string) string {
	return prefix + ":videos"
}
