package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/finsight/blog_backend/config"
	"github.com/finsight/blog_backend/models"
)

type BlogRepository struct {
	collection *mongo.Collection
}

func NewBlogRepository(db *mongo.Client) *BlogRepository {
	return &BlogRepository{
		collection: config.GetCollection(db, "blogPosts"),
	}
}

// UpsertBySlug inserts a post or replaces the existing one with the same slug
func (r *BlogRepository) UpsertBySlug(post models.BlogPost) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	post.UpdatedAt = time.Now()

	filter := bson.M{"slug": post.Slug}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, post, opts)
	return err
}

// CountPosts returns how many posts exist
func (r *BlogRepository) CountPosts() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}
