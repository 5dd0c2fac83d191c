package models

import (
	"database/sql"
	"time"
)

// StringSlice is a []string stored as a JSON column.
type StringSlice []string

// Review holds the optional product-review block embedded in a post.
type Review struct {
	HasReview   bool        `gorm:"not null;default:false;column:has_review" json:"has_review"`
	Rating      float64     `gorm:"type:decimal(4,1);default:0;column:rating" json:"rating"`
	Pros        StringSlice `gorm:"type:json;serializer:json;column:pros" json:"pros"`
	Cons        StringSlice `gorm:"type:json;serializer:json;column:cons" json:"cons"`
	Verdict     string      `gorm:"type:text;column:verdict" json:"verdict"`
	ProductName string      `gorm:"type:varchar(255);column:product_name" json:"product_name"`
}

// Post represents a blog article
type Post struct {
	ID              int64        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Slug            string       `gorm:"type:varchar(255);uniqueIndex;not null;column:slug" json:"slug"`
	Title           string       `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Excerpt         string       `gorm:"type:text;column:excerpt" json:"excerpt"`
	Body            string       `gorm:"type:text;column:body" json:"body"`
	HeroImage       string       `gorm:"type:varchar(512);column:hero_image" json:"hero_image"`
	MetaTitle       string       `gorm:"type:varchar(255);column:meta_title" json:"meta_title"`
	MetaDescription string       `gorm:"type:text;column:meta_description" json:"meta_description"`
	Published       bool         `gorm:"not null;default:false;index;column:published" json:"published"`
	Featured        bool         `gorm:"not null;default:false;column:featured" json:"featured"`
	CreatedAt       time.Time    `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;column:updated_at" json:"updated_at"`
	PublishedAt     sql.NullTime `gorm:"column:published_at" json:"published_at"`
	Review          Review       `gorm:"embedded" json:"review"`

	// Relationships
	Categories []Category `gorm:"many2many:post_categories;joinForeignKey:PostID;joinReferences:CategoryID" json:"categories"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// PrimaryCategory returns the first category of the post, or nil if it has none.
func (p *Post) PrimaryCategory() *Category {
	if len(p.Categories) == 0 {
		return nil
	}
	return &p.Categories[0]
}

// MarkPublished flips the post to published. The published_at stamp is
// set on the first publish only; re-publishing keeps the original date.
func (p *Post) MarkPublished(now time.Time) {
	p.Published = true
	if !p.PublishedAt.Valid {
		p.PublishedAt = sql.NullTime{Time: now, Valid: true}
	}
}

// MarkUnpublished hides the post from readers. The published_at stamp
// is kept so a later re-publish preserves the original date.
func (p *Post) MarkUnpublished() {
	p.Published = false
}

// PostCategory represents a post-to-category link
type PostCategory struct {
	PostID     int64 `gorm:"primaryKey;column:post_id"`
	CategoryID int64 `gorm:"primaryKey;column:category_id"`
}

// TableName specifies the table name for PostCategory
func (PostCategory) TableName() string {
	return "post_categories"
}
