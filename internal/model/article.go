package model

import "time"

// Article is a user-authored post belonging to a topic.
//
// Body is omitted from list responses (listings select explicit columns
// without it), so it carries omitempty. CommentCount is a derived
// aggregate, not a stored column: it is populated by listing queries
// and by GetByID when the caller asks for it, and left nil otherwise.
type Article struct {
	ArticleID     int64     `json:"article_id"`
	Author        string    `json:"author"` // references User.Username
	Title         string    `json:"title"`
	Body          string    `json:"body,omitempty"`
	Topic         string    `json:"topic"` // references Topic.Slug
	CreatedAt     time.Time `json:"created_at"`
	Votes         int64     `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  *int64    `json:"comment_count,omitempty"`
}
