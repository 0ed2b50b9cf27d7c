package models

import "github.com/jinzhu/copier"

// Article is a library article authored by a doctor or an institution.
type Article struct {
	Id            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Author        User     `json:"author"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	ReadTime      int      `json:"readTime"`
	IsBookmarked  bool     `json:"isBookmarked"`
	Views         int      `json:"views"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ArticleRecord is the cached form of an Article, author folded into the
// user table.
type ArticleRecord struct {
	Id            string
	Title         string
	Content       string
	Excerpt       string
	AuthorId      string
	Category      string
	Tags          []string
	ReadTime      int
	IsBookmarked  bool
	Views         int
	FeaturedImage string
	CreatedAt     string
	UpdatedAt     string
}

func (a Article) Record() ArticleRecord {
	rec := ArticleRecord{}
	copier.Copy(&rec, &a)
	rec.AuthorId = a.Author.Id
	return rec
}
