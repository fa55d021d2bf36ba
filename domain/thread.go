package domain

import (
	"context"
	"time"
)

// NewThread is the payload for opening a thread.
type NewThread struct {
	Title string
	Body  string
}

// ParseNewThread validates a raw payload into a NewThread.
func ParseNewThread(p Payload) (NewThread, error) {
	fields, err := p.stringFields("NEW_THREAD", "title", "body")
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{Title: fields["title"], Body: fields["body"]}, nil
}

// Thread is a persisted thread as returned after creation.
type Thread struct {
	ID    string `validate:"required"`
	Title string `validate:"required"`
	Owner string `validate:"required"`
}

func (t Thread) Validate() error {
	return validateRow("THREAD", t)
}

// ThreadDetail is a thread with its author's username. Comments is nil when
// the detail comes straight from storage, and set by the detail use case.
type ThreadDetail struct {
	ID       string    `validate:"required"`
	Title    string    `validate:"required"`
	Body     string    `validate:"required"`
	Date     time.Time `validate:"required"`
	Username string    `validate:"required"`
	Comments []CommentDetail
}

func (t ThreadDetail) Validate() error {
	return validateRow("THREAD_DETAIL", t)
}

// ThreadRepository represent the thread's repository contract
type ThreadRepository interface {
	// AddNewThread stores a thread owned by ownerID.
	AddNewThread(ctx context.Context, nt NewThread, ownerID string) (Thread, error)

	// VerifyThreadAvailability returns ErrNotFound if the thread doesn't exist.
	VerifyThreadAvailability(ctx context.Context, id string) error

	// GetThreadDetailByThreadID returns the thread without comments.
	// Returns ErrNotFound if the thread doesn't exist.
	GetThreadDetailByThreadID(ctx context.Context, id string) (ThreadDetail, error)

	// FetchIDs returns every thread id, used to seed the bloom filter.
	FetchIDs(ctx context.Context) ([]string, error)
}

// ThreadCache keeps thread headers (no comments). Threads are never edited,
// so a cached header stays valid until it expires.
type ThreadCache interface {
	// GetThreadDetail returns ErrCacheMiss if the thread is not cached.
	GetThreadDetail(ctx context.Context, id string) (ThreadDetail, error)
	SetThreadDetail(ctx context.Context, td *ThreadDetail) error
}

// ThreadUsecase represent the thread's usecases
type ThreadUsecase interface {
	AddNewThread(ctx context.Context, p Payload, ownerID string) (Thread, error)
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)
}
