package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

func TestCommentDetailMasksDeletedContent(t *testing.T) {
	now := time.Now()

	visible, err := domain.NewCommentDetail("comment-123", "dicoding", now, "sebuah comment", false)
	require.NoError(t, err)
	assert.Equal(t, "sebuah comment", visible.Content.String())
	assert.False(t, visible.Content.Redacted())
	assert.Empty(t, visible.Replies)
	assert.NotNil(t, visible.Replies)

	deleted, err := domain.NewCommentDetail("comment-123", "dicoding", now, "sebuah comment", true)
	require.NoError(t, err)
	assert.Equal(t, domain.DeletedCommentPlaceholder, deleted.Content.String())
	assert.True(t, deleted.Content.Redacted())

	again := domain.NewCommentContent(deleted.Content.String(), true)
	assert.Equal(t, domain.DeletedCommentPlaceholder, again.String())
}

func TestReplyDetailMasksDeletedContent(t *testing.T) {
	now := time.Now()

	visible, err := domain.NewReplyDetail("reply-123", "sebuah balasan", now, "dicoding", false)
	require.NoError(t, err)
	assert.Equal(t, "sebuah balasan", visible.Content.String())

	deleted, err := domain.NewReplyDetail("reply-123", "sebuah balasan", now, "dicoding", true)
	require.NoError(t, err)
	assert.Equal(t, "**balasan telah dihapus**", deleted.Content.String())
}

func TestContentMarshalJSON(t *testing.T) {
	b, err := json.Marshal(domain.NewCommentContent("secret", true))
	require.NoError(t, err)
	assert.JSONEq(t, `"**komentar telah dihapus**"`, string(b))

	b, err = json.Marshal(domain.NewReplyContent("hello", false))
	require.NoError(t, err)
	assert.JSONEq(t, `"hello"`, string(b))
}
