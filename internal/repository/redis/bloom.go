package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

const (
	KeyThreadBloom = "bloom:thread:ids"

	bloomHashes  = 3
	bulkAddBatch = 1000
)

// threadBloom is a bloom filter over thread ids kept in a redis bitmap.
type threadBloom struct {
	client  *redis.Client
	bitSize uint64
}

var _ domain.BloomRepository = (*threadBloom)(nil)

func NewThreadBloom(client *redis.Client, bitSize uint64) *threadBloom {
	return &threadBloom{
		client:  client,
		bitSize: bitSize,
	}
}

func (b *threadBloom) Add(ctx context.Context, id string) error {
	pipe := b.client.Pipeline()
	for _, offset := range b.offsets(id) {
		pipe.SetBit(ctx, KeyThreadBloom, offset, 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (b *threadBloom) Exists(ctx context.Context, id string) (bool, error) {
	pipe := b.client.Pipeline()
	bits := make([]*redis.IntCmd, 0, bloomHashes)
	for _, offset := range b.offsets(id) {
		bits = append(bits, pipe.GetBit(ctx, KeyThreadBloom, offset))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	for _, bit := range bits {
		if bit.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (b *threadBloom) BulkAdd(ctx context.Context, ids []string) error {
	// 按批提交, 避免单个pipeline过大
	for start := 0; start < len(ids); start += bulkAddBatch {
		end := min(start+bulkAddBatch, len(ids))

		pipe := b.client.Pipeline()
		for _, id := range ids[start:end] {
			for _, offset := range b.offsets(id) {
				pipe.SetBit(ctx, KeyThreadBloom, offset, 1)
			}
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// offsets derives the bit positions by double hashing crc32 and fnv64.
func (b *threadBloom) offsets(id string) []int64 {
	data := []byte(id)
	h1 := uint64(crc32.ChecksumIEEE(data))
	f := fnv.New64a()
	_, _ = f.Write(data)
	h2 := f.Sum64() | 1

	res := make([]int64, bloomHashes)
	for i := range res {
		res[i] = int64((h1 + uint64(i)*h2) % b.bitSize)
	}
	return res
}
