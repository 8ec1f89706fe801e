package mongo

import (
	"context"
	"errors"
	"fmt"

	"blogposts/app/models"
	"blogposts/app/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostRepository implements repositories.PostRepository on the posts collection.
type PostRepository struct {
	coll *mongo.Collection
}

// NewPostRepository creates a PostRepository on the posts collection of db
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

// List returns one page of posts, restricted to one blog when q.BlogID is set
func (r *PostRepository) List(ctx context.Context, q models.PostQuery) ([]*models.Post, int, error) {
	filter := bson.M{}
	if q.BlogID != "" {
		filter["blogId"] = q.BlogID
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	cur, err := r.coll.Find(ctx, filter, listOptions(q.ListQuery, q.SortField()))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find posts: %w", err)
	}
	var docs []postDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode posts: %w", err)
	}

	posts := make([]*models.Post, len(docs))
	for i, d := range docs {
		posts[i] = d.model()
	}
	return posts, int(total), nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}

	var doc postDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return doc.model(), nil
}

// Create inserts a new post and assigns its ObjectID
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	doc := newPostDocument(post)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	post.ID = doc.ID.Hex()
	return nil
}

// Update sets the mutable fields of an existing post
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	oid, ok := objectID(post.ID)
	if !ok {
		return repositories.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":            post.Title,
		"shortDescription": post.ShortDescription,
		"content":          post.Content,
		"blogId":           post.BlogID,
		"blogName":         post.BlogName,
	}})
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a post by ID
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repositories.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteByBlogID deletes every post owned by blogID
func (r *PostRepository) DeleteByBlogID(ctx context.Context, blogID string) (int, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"blogId": blogID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete posts of blog %s: %w", blogID, err)
	}
	return int(res.DeletedCount), nil
}

// DeleteAll removes every post
func (r *PostRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete posts: %w", err)
	}
	return nil
}

var _ repositories.PostRepository = (*PostRepository)(nil)
