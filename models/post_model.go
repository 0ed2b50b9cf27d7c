package models

import "github.com/jinzhu/copier"

// Post is the wire shape of a feed post as the backend returns it, with the
// author snapshot embedded.
type Post struct {
	Id           string   `json:"id"`
	Author       User     `json:"author"`
	Content      string   `json:"content"`
	Images       []string `json:"images,omitempty"`
	Likes        int      `json:"likes"`
	Comments     int      `json:"comments"`
	Shares       int      `json:"shares"`
	IsLiked      bool     `json:"isLiked"`
	IsBookmarked bool     `json:"isBookmarked"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// PostRecord is the cached, normalized form of a Post. The author snapshot is
// folded into the user table and referenced by id.
type PostRecord struct {
	Id           string
	AuthorId     string
	Content      string
	Images       []string
	Likes        int
	Comments     int
	Shares       int
	IsLiked      bool
	IsBookmarked bool
	Tags         []string
	CreatedAt    string
	UpdatedAt    string
}

// Record strips the embedded author down to its id.
func (p Post) Record() PostRecord {
	rec := PostRecord{}
	copier.Copy(&rec, &p)
	rec.AuthorId = p.Author.Id
	return rec
}
