package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// Activity 一次请求的活动记录
type Activity struct {
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}

// ActivityStore 按客户端保存最近的请求记录
// 设计说明：
// 1. Key设计：activity:{client}，值为JSON列表，最新的在前
// 2. LPUSH + LTRIM只保留最近maxEntries条，并刷新过期时间
// 3. client为nil时所有操作都是no-op
type ActivityStore struct {
	client     *redis.Client
	maxEntries int
	ttl        time.Duration
}

// NewActivityStore 创建活动记录存储
func NewActivityStore(client *redis.Client, cfg *config.Config) *ActivityStore {
	return &ActivityStore{
		client:     client,
		maxEntries: cfg.Activity.MaxEntries,
		ttl:        cfg.Activity.TTL,
	}
}

// Enabled 是否连接了Redis
func (s *ActivityStore) Enabled() bool {
	return s.client != nil
}

// Record 追加一条记录
func (s *ActivityStore) Record(ctx context.Context, clientID string, a Activity) error {
	if s.client == nil {
		return nil
	}

	data, err := json.Marshal(a)
	if err != nil {
		return apperrors.Wrap(err, "序列化活动记录失败")
	}

	key := activityKey(clientID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(s.maxEntries-1))
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.ErrRedisError.WithCause(fmt.Errorf("保存活动记录失败: %w", err))
	}
	return nil
}

// Recent 最近的记录，最新的在前
func (s *ActivityStore) Recent(ctx context.Context, clientID string) ([]Activity, error) {
	activities := make([]Activity, 0)
	if s.client == nil {
		return activities, nil
	}

	items, err := s.client.LRange(ctx, activityKey(clientID), 0, int64(s.maxEntries-1)).Result()
	if err != nil {
		return nil, apperrors.ErrRedisError.WithCause(fmt.Errorf("读取活动记录失败: %w", err))
	}

	for _, item := range items {
		var a Activity
		if err := json.Unmarshal([]byte(item), &a); err != nil {
			continue
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func activityKey(clientID string) string {
	return fmt.Sprintf("activity:%s", clientID)
}
