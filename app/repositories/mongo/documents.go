package mongo

import (
	"time"

	"blogposts/app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type blogDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	WebsiteURL   string             `bson:"websiteUrl"`
	CreatedAt    time.Time          `bson:"createdAt"`
	IsMembership bool               `bson:"isMembership"`
}

type postDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	ShortDescription string             `bson:"shortDescription"`
	Content          string             `bson:"content"`
	BlogID           string             `bson:"blogId"`
	BlogName         string             `bson:"blogName"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

func newBlogDocument(b *models.Blog) blogDocument {
	return blogDocument{
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		CreatedAt:    b.CreatedAt,
		IsMembership: b.IsMembership,
	}
}

func (d blogDocument) model() *models.Blog {
	return &models.Blog{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Description:  d.Description,
		WebsiteURL:   d.WebsiteURL,
		CreatedAt:    d.CreatedAt.UTC(),
		IsMembership: d.IsMembership,
	}
}

func newPostDocument(p *models.Post) postDocument {
	return postDocument{
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		BlogID:           p.BlogID,
		BlogName:         p.BlogName,
		CreatedAt:        p.CreatedAt,
	}
}

func (d postDocument) model() *models.Post {
	return &models.Post{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		Content:          d.Content,
		BlogID:           d.BlogID,
		BlogName:         d.BlogName,
		CreatedAt:        d.CreatedAt.UTC(),
	}
}

// objectID parses a hex id. Malformed ids can never match a document.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

// listOptions sorts by field with _id as the tie-breaker and selects one page.
func listOptions(q models.ListQuery, field string) *options.FindOptions {
	if field == "id" {
		field = "_id"
	}
	dir := -1
	if q.Ascending() {
		dir = 1
	}

	sort := bson.D{{Key: field, Value: dir}}
	if field != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: dir})
	}

	return options.Find().
		SetSort(sort).
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.PageSize))
}
