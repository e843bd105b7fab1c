package model

import "time"

// MaxReplyDepth bounds reply nesting when comments come back from storage.
// The UI only renders the top level, but archived trees are recursive and an
// unbounded tree is a resource-exhaustion risk on deserialization.
const MaxReplyDepth = 10

const (
	MinCommentLength = 1
	MaxCommentLength = 2000
)

// Comment is a comment on a video. Replies recurse with the same shape.
type Comment struct {
	ID         string    `json:"id"`
	VideoID    string    `json:"videoId"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	UserAvatar string    `json:"userAvatar"`
	Content    string    `json:"content"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"createdAt"`
	Replies    []Comment `json:"replies"`
}

// ClampReplies drops reply subtrees nested deeper than maxDepth levels below
// the receiver. ClampReplies(0) removes all replies.
func (c *Comment) ClampReplies(maxDepth int) {
	if maxDepth <= 0 {
		c.Replies = nil
		return
	}
	for i := range c.Replies {
		c.Replies[i].ClampReplies(maxDepth - 1)
	}
}
