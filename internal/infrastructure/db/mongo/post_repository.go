package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const postCollection = "posts"

// PostRepository implements ports.PostRepository using MongoDB.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postCollection)}
}

type mongoPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Content     string             `bson:"content"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		CreatedAt:   post.CreatedAt.Unix(),
		UpdatedAt:   post.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PostRepository) Find(ctx context.Context, page ports.PageQuery) ([]domain.Post, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, pageOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoPost
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, *docs[i].toDomain())
	}
	return posts, total, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":       post.Title,
		"description": post.Description,
		"content":     post.Content,
		"updated_at":  post.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (mp *mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:          mp.ID.Hex(),
		Title:       mp.Title,
		Description: mp.Description,
		Content:     mp.Content,
		CreatedAt:   unixToTime(mp.CreatedAt),
		UpdatedAt:   unixToTime(mp.UpdatedAt),
	}
}

// pageOptions translates a PageQuery into driver find options.
func pageOptions(page ports.PageQuery) *options.FindOptions {
	sortField := page.SortBy
	if sortField == "" || sortField == "id" {
		sortField = "_id"
	}
	dir := 1
	if page.SortDir == "desc" {
		dir = -1
	}
	return options.Find().
		SetSort(bson.D{{Key: sortField, Value: dir}}).
		SetSkip(int64(page.PageNo * page.PageSize)).
		SetLimit(int64(page.PageSize))
}
