package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

const (
	KeyThread = "thread:%s"

	threadTTL = 10 * time.Minute
)

type threadCache struct {
	client *redis.Client
}

var _ domain.ThreadCache = (*threadCache)(nil)

func NewThreadCache(client *redis.Client) *threadCache {
	return &threadCache{
		client,
	}
}

// cachedThread is the stored header; comments are never cached.
type cachedThread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

func (c *threadCache) GetThreadDetail(ctx context.Context, id string) (domain.ThreadDetail, error) {
	key := fmt.Sprintf(KeyThread, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ThreadDetail{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.ThreadDetail{}, err
	}

	var ct cachedThread
	if err = json.Unmarshal(data, &ct); err != nil {
		return domain.ThreadDetail{}, err
	}
	return domain.ThreadDetail{
		ID:       ct.ID,
		Title:    ct.Title,
		Body:     ct.Body,
		Date:     ct.Date,
		Username: ct.Username,
	}, nil
}

func (c *threadCache) SetThreadDetail(ctx context.Context, td *domain.ThreadDetail) error {
	data, err := json.Marshal(cachedThread{
		ID:       td.ID,
		Title:    td.Title,
		Body:     td.Body,
		Date:     td.Date,
		Username: td.Username,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyThread, td.ID), data, threadTTL).Err()
}
