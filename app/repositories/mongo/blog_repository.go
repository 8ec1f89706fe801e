package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"blogposts/app/models"
	"blogposts/app/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BlogRepository implements repositories.BlogRepository on the blogs collection.
type BlogRepository struct {
	coll *mongo.Collection
}

// NewBlogRepository creates a BlogRepository on the blogs collection of db
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

// List returns one page of blogs whose name contains the search term, ignoring case
func (r *BlogRepository) List(ctx context.Context, q models.BlogQuery) ([]*models.Blog, int, error) {
	filter := bson.M{}
	if q.SearchNameTerm != "" {
		filter["name"] = bson.M{
			"$regex":   regexp.QuoteMeta(q.SearchNameTerm),
			"$options": "i",
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	cur, err := r.coll.Find(ctx, filter, listOptions(q.ListQuery, q.SortField()))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find blogs: %w", err)
	}
	var docs []blogDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode blogs: %w", err)
	}

	blogs := make([]*models.Blog, len(docs))
	for i, d := range docs {
		blogs[i] = d.model()
	}
	return blogs, int(total), nil
}

// GetByID retrieves a blog by ID
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}

	var doc blogDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return doc.model(), nil
}

// Create inserts a new blog and assigns its ObjectID
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	doc := newBlogDocument(blog)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	blog.ID = doc.ID.Hex()
	return nil
}

// Update sets the mutable fields of an existing blog
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	oid, ok := objectID(blog.ID)
	if !ok {
		return repositories.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":        blog.Name,
		"description": blog.Description,
		"websiteUrl":  blog.WebsiteURL,
	}})
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a blog by ID
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repositories.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteAll removes every blog
func (r *BlogRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete blogs: %w", err)
	}
	return nil
}

var _ repositories.BlogRepository = (*BlogRepository)(nil)
