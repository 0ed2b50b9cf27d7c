package models

import "github.com/jinzhu/copier"

// Comment belongs to exactly one post. Replies nest without a depth limit.
type Comment struct {
	Id        string    `json:"id"`
	PostId    string    `json:"postId"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	IsLiked   bool      `json:"isLiked"`
	CreatedAt string    `json:"createdAt"`
	Replies   []Comment `json:"replies,omitempty"`
}

// CommentRecord is the cached form of a Comment, author folded into the user
// table. Replies are normalized recursively.
type CommentRecord struct {
	Id        string
	PostId    string
	AuthorId  string
	Content   string
	Likes     int
	IsLiked   bool
	CreatedAt string
	Replies   []CommentRecord
}

func (c Comment) Record() CommentRecord {
	rec := CommentRecord{}
	copier.Copy(&rec, &c)
	rec.AuthorId = c.Author.Id
	rec.Replies = nil
	for _, reply := range c.Replies {
		rec.Replies = append(rec.Replies, reply.Record())
	}
	return rec
}

// Authors returns the author snapshots of the comment and all nested replies.
func (c Comment) Authors() []User {
	authors := []User{c.Author}
	for _, reply := range c.Replies {
		authors = append(authors, reply.Authors()...)
	}
	return authors
}
