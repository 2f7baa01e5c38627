package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const commentCollection = "comments"

// CommentRepository implements ports.CommentRepository using MongoDB.
// Listing and counting are always filtered by post_id, so pagination totals
// reflect the addressed post only.
type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Body      string             `bson:"body"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoComment{
		PostID:    comment.PostID,
		Name:      comment.Name,
		Email:     comment.Email,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.Unix(),
		UpdatedAt: comment.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoComment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID string, page ports.PageQuery) ([]domain.Comment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"post_id": postID}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	cursor, err := r.coll.Find(ctx, filter, pageOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("find comments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoComment
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(docs))
	for i := range docs {
		comments = append(comments, *docs[i].toDomain())
	}
	return comments, total, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	oid, err := primitive.ObjectIDFromHex(comment.ID)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":       comment.Name,
		"email":      comment.Email,
		"body":       comment.Body,
		"updated_at": comment.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (mc *mongoComment) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        mc.ID.Hex(),
		PostID:    mc.PostID,
		Name:      mc.Name,
		Email:     mc.Email,
		Body:      mc.Body,
		CreatedAt: unixToTime(mc.CreatedAt),
		UpdatedAt: unixToTime(mc.UpdatedAt),
	}
}
