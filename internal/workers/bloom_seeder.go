package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// threadIDSource lists every stored thread id.
type threadIDSource interface {
	FetchIDs(ctx context.Context) ([]string, error)
}

// BloomSeeder loads every thread id into the bloom filter at startup and
// again on each tick, so a flushed or restarted redis does not hide threads.
type BloomSeeder struct {
	threads  threadIDSource
	bloom    domain.BloomRepository
	interval time.Duration
}

func NewBloomSeeder(threads threadIDSource, bloom domain.BloomRepository, interval time.Duration) *BloomSeeder {
	return &BloomSeeder{
		threads:  threads,
		bloom:    bloom,
		interval: interval,
	}
}

// Seed adds all known thread ids to the filter once.
func (s *BloomSeeder) Seed(ctx context.Context) error {
	ids, err := s.threads.FetchIDs(ctx)
	if err != nil {
		return err
	}
	if err := s.bloom.BulkAdd(ctx, ids); err != nil {
		return err
	}
	logrus.Infof("bloom filter seeded with %d thread ids", len(ids))
	return nil
}

// Start reseeds on every tick until ctx is done.
func (s *BloomSeeder) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Seed(ctx); err != nil {
				logrus.Errorf("failed to reseed bloom filter: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down BloomSeeder")
			return
		}
	}
}
