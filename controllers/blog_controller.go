// controllers/blog_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/finsight/blog_backend/config"
	"github.com/finsight/blog_backend/models"
	"github.com/finsight/blog_backend/utils"
)

// BlogController handles blog post CRUD and attachments
type BlogController struct {
	DB *mongo.Client
}

// NewBlogController creates a new blog controller
func NewBlogController(db *mongo.Client) *BlogController {
	return &BlogController{DB: db}
}

// GetPublicPosts returns published posts for the public site
func (bc *BlogController) GetPublicPosts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(bc.DB, "blogPosts")

	findOptions := options.Find().
		SetSort(bson.D{{Key: "publishedDate", Value: -1}}).
		SetProjection(bson.M{
			"title":         1,
			"slug":          1,
			"description":   1,
			"publishedDate": 1,
			"readTime":      1,
			"category":      1,
			"image":         1,
			"coverImage":    1,
			"tags":          1,
		})

	cursor, err := collection.Find(ctx, bson.M{"isPublished": true}, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching blog posts",
		})
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding blog posts",
		})
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPublicPostBySlug returns a single published post
func (bc *BlogController) GetPublicPostBySlug(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slug := c.Param("slug")
	collection := config.GetCollection(bc.DB, "blogPosts")

	var post models.BlogPost
	err := collection.FindOne(ctx, bson.M{"slug": slug, "isPublished": true}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Post not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching blog post",
		})
	}

	return c.JSON(http.StatusOK, post)
}

// GetPostsByCategory returns published posts in one category
func (bc *BlogController) GetPostsByCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category := c.Param("category")
	collection := config.GetCollection(bc.DB, "blogPosts")

	findOptions := options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"category": category, "isPublished": true}, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching posts by category",
		})
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding blog posts",
		})
	}

	return c.JSON(http.StatusOK, posts)
}

// GetAllPosts returns every post, drafts included (admin)
func (bc *BlogController) GetAllPosts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(bc.DB, "blogPosts")

	findOptions := options.Find().SetSort(bson.D{{Key: "publishedDate", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching blog posts",
		})
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding blog posts",
		})
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPostBySlug returns one post including drafts (admin)
func (bc *BlogController) GetPostBySlug(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slug := c.Param("slug")
	collection := config.GetCollection(bc.DB, "blogPosts")

	var post models.BlogPost
	err := collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Post not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching blog post",
		})
	}

	return c.JSON(http.StatusOK, post)
}

// CreatePost creates a new blog post (admin)
func (bc *BlogController) CreatePost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Title == "" || req.Content == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Title, content, and description are required",
		})
	}

	category := req.Category
	if category == "" {
		category = models.BlogCategories[0]
	}
	if !models.IsValidCategory(category) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid category",
		})
	}

	readTime := req.ReadTime
	if readTime <= 0 {
		readTime = 5
	}

	now := time.Now()
	post := models.BlogPost{
		ID:            primitive.NewObjectID(),
		Title:         req.Title,
		Slug:          models.Slugify(req.Title),
		Description:   req.Description,
		Content:       req.Content,
		PublishedDate: now,
		UpdatedDate:   now,
		ReadTime:      readTime,
		Category:      category,
		Image:         req.Image,
		CoverImage:    req.CoverImage,
		Tags:          utils.SanitizeStringArray(req.Tags),
		RelatedPosts:  req.RelatedPosts,
		IsPublished:   req.IsPublished,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	// Fall back to the inline image when no cover image was provided
	if post.CoverImage == "" {
		post.CoverImage = post.Image
	}

	collection := config.GetCollection(bc.DB, "blogPosts")
	_, err := collection.InsertOne(ctx, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "A post with this title already exists",
			})
		}
		log.Printf("Error creating post: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error creating blog post",
		})
	}

	return c.JSON(http.StatusCreated, post)
}

// UpdatePost updates an existing blog post by ID (admin)
func (bc *BlogController) UpdatePost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	var req models.BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Title == "" || req.Content == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Title, content, and description are required",
		})
	}

	collection := config.GetCollection(bc.DB, "blogPosts")

	var post models.BlogPost
	err = collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Blog post not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching blog post",
		})
	}

	now := time.Now()
	update := bson.M{
		"title":       req.Title,
		"slug":        models.Slugify(req.Title),
		"description": req.Description,
		"content":     req.Content,
		"isPublished": req.IsPublished,
		"updatedDate": now,
		"updatedAt":   now,
	}
	if req.Category != "" {
		if !models.IsValidCategory(req.Category) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid category",
			})
		}
		update["category"] = req.Category
	}
	if req.ReadTime > 0 {
		update["readTime"] = req.ReadTime
	}
	if req.Author != nil {
		update["author"] = req.Author
	}
	if req.Image != "" {
		update["image"] = req.Image
	}
	if req.CoverImage != "" {
		update["coverImage"] = req.CoverImage
	}
	if req.Tags != nil {
		update["tags"] = utils.SanitizeStringArray(req.Tags)
	}
	if req.RelatedPosts != nil {
		update["relatedPosts"] = req.RelatedPosts
	}
	// Stamp the publish date when a draft goes live
	if req.IsPublished && !post.IsPublished {
		update["publishedDate"] = now
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": update})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "A post with this title already exists",
			})
		}
		log.Printf("Error updating post: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error updating blog post",
		})
	}

	err = collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching updated post",
		})
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost removes a blog post and its stored attachments (admin)
func (bc *BlogController) DeletePost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	collection := config.GetCollection(bc.DB, "blogPosts")

	var post models.BlogPost
	err = collection.FindOneAndDelete(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Blog post not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error deleting blog post",
		})
	}

	// Clean up attachment files left on disk
	for _, att := range post.Attachments {
		if err := utils.DeleteUploadedFile(att.URL); err != nil {
			log.Printf("Error deleting attachment file %s: %v", att.URL, err)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Blog post deleted successfully",
	})
}

// UploadAttachments stores uploaded files and binds them to a post (admin)
func (bc *BlogController) UploadAttachments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	postIDHex := c.FormValue("postId")
	if postIDHex == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Post ID is required",
		})
	}

	postID, err := primitive.ObjectIDFromHex(postIDHex)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid multipart form",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No files uploaded",
		})
	}
	if len(files) > 5 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A maximum of 5 files can be uploaded at once",
		})
	}

	collection := config.GetCollection(bc.DB, "blogPosts")

	var post models.BlogPost
	err = collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Post not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching blog post",
		})
	}

	newAttachments := []models.Attachment{}
	for _, file := range files {
		url, err := utils.SaveAttachment(file)
		if err != nil {
			// Roll back files stored so far in this request
			for _, att := range newAttachments {
				utils.DeleteUploadedFile(att.URL)
			}
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		newAttachments = append(newAttachments, models.Attachment{
			ID:   primitive.NewObjectID(),
			Name: file.Filename,
			URL:  url,
			Type: file.Header.Get("Content-Type"),
		})
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{
		"$push": bson.M{"attachments": bson.M{"$each": newAttachments}},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		for _, att := range newAttachments {
			utils.DeleteUploadedFile(att.URL)
		}
		log.Printf("Error saving attachments: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error uploading files",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Files uploaded successfully",
		Data:    newAttachments,
	})
}

// DeleteAttachment removes one attachment from a post and from disk (admin)
func (bc *BlogController) DeleteAttachment(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid post ID",
		})
	}

	attachmentID, err := primitive.ObjectIDFromHex(c.Param("attachmentId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid attachment ID",
		})
	}

	collection := config.GetCollection(bc.DB, "blogPosts")

	var post models.BlogPost
	err = collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Blog post not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching blog post",
		})
	}

	var attachment *models.Attachment
	for i := range post.Attachments {
		if post.Attachments[i].ID == attachmentID {
			attachment = &post.Attachments[i]
			break
		}
	}
	if attachment == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Attachment not found",
		})
	}

	if err := utils.DeleteUploadedFile(attachment.URL); err != nil {
		log.Printf("Error deleting attachment file %s: %v", attachment.URL, err)
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{
		"$pull": bson.M{"attachments": bson.M{"_id": attachmentID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error deleting attachment",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Attachment deleted successfully",
	})
}
