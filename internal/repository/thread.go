package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// loadTimeout bounds a shared storage load, which outlives any single caller.
const loadTimeout = 5 * time.Second

// threadRepository 协调层，协调布隆过滤器、缓存和数据库
type threadRepository struct {
	db        domain.ThreadRepository
	cache     domain.ThreadCache
	bloom     domain.BloomRepository
	loadGroup singleflight.Group

	// unindexed holds ids stored in MySQL whose bloom filter write failed.
	unindexed sync.Map
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository wraps the database repository with a header cache and
// a bloom filter of known thread ids.
func NewThreadRepository(db domain.ThreadRepository, cache domain.ThreadCache, bloom domain.BloomRepository) *threadRepository {
	return &threadRepository{
		db:    db,
		cache: cache,
		bloom: bloom,
	}
}

func (r *threadRepository) AddNewThread(ctx context.Context, nt domain.NewThread, ownerID string) (domain.Thread, error) {
	th, err := r.db.AddNewThread(ctx, nt, ownerID)
	if err != nil {
		return domain.Thread{}, err
	}

	if err := r.bloom.Add(ctx, th.ID); err != nil {
		logrus.Errorf("failed to add thread %s to bloom filter: %v", th.ID, err)
		r.unindexed.Store(th.ID, struct{}{})
	}
	return th, nil
}

func (r *threadRepository) VerifyThreadAvailability(ctx context.Context, id string) error {
	if !r.mightExist(ctx, id) {
		return domain.ErrNotFound
	}
	if _, err := r.cache.GetThreadDetail(ctx, id); err == nil {
		return nil
	}
	return r.db.VerifyThreadAvailability(ctx, id)
}

// GetThreadDetailByThreadID 先查缓存，未命中时用singleflight回源，避免缓存击穿
func (r *threadRepository) GetThreadDetailByThreadID(ctx context.Context, id string) (domain.ThreadDetail, error) {
	if !r.mightExist(ctx, id) {
		return domain.ThreadDetail{}, domain.ErrNotFound
	}

	td, err := r.cache.GetThreadDetail(ctx, id)
	if err == nil {
		return td, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("thread cache unavailable, id: %s, err: %v", id, err)
	}

	result, err, _ := r.loadGroup.Do("thread:"+id, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		td, err := r.db.GetThreadDetailByThreadID(loadCtx, id)
		if err != nil {
			return nil, err
		}

		if err := r.cache.SetThreadDetail(loadCtx, &td); err != nil {
			logrus.Warnf("failed to cache thread %s: %v", id, err)
		}
		return td, nil
	})
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	return result.(domain.ThreadDetail), nil
}

func (r *threadRepository) FetchIDs(ctx context.Context) ([]string, error) {
	return r.db.FetchIDs(ctx)
}

// mightExist is false only when the bloom filter rules the id out. A filter
// failure lets the lookup through to storage.
func (r *threadRepository) mightExist(ctx context.Context, id string) bool {
	if _, pending := r.unindexed.Load(id); pending {
		// 重试写入布隆过滤器，成功后恢复正常判断
		if err := r.bloom.Add(ctx, id); err == nil {
			r.unindexed.Delete(id)
		}
		return true
	}

	ok, err := r.bloom.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter unavailable, id: %s, err: %v", id, err)
		return true
	}
	return ok
}
