package model

import "time"

// Comment is a user-authored reply attached to an article.
type Comment struct {
	CommentID int64     `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"` // references User.Username
	Votes     int64     `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
