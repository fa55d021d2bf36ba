package domain

import "encoding/json"

const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// Content is the body of a comment or reply as read from storage. It is either
// visible text or redacted; the stored text is never altered, only hidden.
type Content struct {
	text        string
	placeholder string // set only when redacted
}

// NewCommentContent redacts text when the comment was soft-deleted.
func NewCommentContent(text string, isDeleted bool) Content {
	return newContent(text, isDeleted, DeletedCommentPlaceholder)
}

// NewReplyContent redacts text when the reply was soft-deleted.
func NewReplyContent(text string, isDeleted bool) Content {
	return newContent(text, isDeleted, DeletedReplyPlaceholder)
}

func newContent(text string, isDeleted bool, placeholder string) Content {
	if isDeleted {
		return Content{placeholder: placeholder}
	}
	return Content{text: text}
}

func (c Content) Redacted() bool {
	return c.placeholder != ""
}

// String is the display form.
func (c Content) String() string {
	if c.Redacted() {
		return c.placeholder
	}
	return c.text
}

func (c Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
