// models/blog_post.go
package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogCategories is the set of categories a post can belong to
var BlogCategories = []string{"Personal Finance", "Investment", "Business", "Technology"}

// Author holds the byline information embedded in a blog post
type Author struct {
	Name        string `json:"name" bson:"name"`
	Designation string `json:"designation" bson:"designation"`
	Bio         string `json:"bio" bson:"bio"`
}

// Attachment represents a file uploaded for a blog post
type Attachment struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
	URL  string             `json:"url" bson:"url"`
	Type string             `json:"type" bson:"type"`
}

// RelatedPost is a lightweight reference to another post shown alongside an article
type RelatedPost struct {
	Title    string `json:"title" bson:"title"`
	Excerpt  string `json:"excerpt" bson:"excerpt"`
	ImageURL string `json:"imageUrl" bson:"imageUrl"`
	Slug     string `json:"slug" bson:"slug"`
}

// BlogPost model for blog articles
type BlogPost struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Slug          string             `json:"slug" bson:"slug"`
	Description   string             `json:"description" bson:"description"`
	Content       string             `json:"content" bson:"content"`
	PublishedDate time.Time          `json:"publishedDate" bson:"publishedDate"`
	UpdatedDate   time.Time          `json:"updatedDate" bson:"updatedDate"`
	ReadTime      int                `json:"readTime" bson:"readTime"`
	Category      string             `json:"category" bson:"category"`
	Author        Author             `json:"author" bson:"author"`
	Image         string             `json:"image" bson:"image"`
	CoverImage    string             `json:"coverImage" bson:"coverImage"`
	Attachments   []Attachment       `json:"attachments,omitempty" bson:"attachments,omitempty"`
	Tags          []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	RelatedPosts  []RelatedPost      `json:"relatedPosts,omitempty" bson:"relatedPosts,omitempty"`
	IsPublished   bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BlogPostRequest model for creating or updating a blog post
type BlogPostRequest struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Content      string        `json:"content"`
	Category     string        `json:"category"`
	ReadTime     int           `json:"readTime,omitempty"`
	Author       *Author       `json:"author,omitempty"`
	Image        string        `json:"image,omitempty"`
	CoverImage   string        `json:"coverImage,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	RelatedPosts []RelatedPost `json:"relatedPosts,omitempty"`
	IsPublished  bool          `json:"isPublished"`
}

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL slug from a post title
func Slugify(title string) string {
	slug := slugCleanup.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// IsValidCategory reports whether the category is one of the allowed values
func IsValidCategory(category string) bool {
	for _, c := range BlogCategories {
		if c == category {
			return true
		}
	}
	return false
}
