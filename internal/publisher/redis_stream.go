package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream names for downstream consumers.
const (
	statsStream  = "season.stats.baseball"
	ingestStream = "season.ingest.baseball"
)

// RedisStreamPublisher publishes generation and ingestion events to Redis
// streams
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a new Redis stream publisher from existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// GenerationEvent describes one completed stats-generation run.
type GenerationEvent struct {
	Documents []string `json:"documents"`
	Games     int      `json:"games"`
	Players   int      `json:"players"`
}

// IngestEvent describes one ingested game's rows.
type IngestEvent struct {
	GameID string `json:"game_id"`
	Rows   int    `json:"rows"`
}

// PublishGeneration announces a completed generation run to the stats stream
func (rsp *RedisStreamPublisher) PublishGeneration(ctx context.Context, event GenerationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: statsStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}

// PublishIngest announces freshly ingested game rows to the ingest stream
func (rsp *RedisStreamPublisher) PublishIngest(ctx context.Context, event IngestEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: ingestStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
