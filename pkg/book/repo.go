package book

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("books"),
	}
}

func (r *MongoRepo) GetAll(ctx context.Context) ([]*Book, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoRepo) GetByTitle(ctx context.Context, title string) ([]*Book, error) {
	return r.find(ctx, bson.M{"title": title})
}

func (r *MongoRepo) find(ctx context.Context, filter interface{}) ([]*Book, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	books := make([]*Book, 0)
	for cursor.Next(ctx) {
		var b Book
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		b.ID = b.MongoID.Hex()
		books = append(books, &b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("read books cursor: %w", err)
	}

	return books, nil
}

func (r *MongoRepo) GetByISBN(ctx context.Context, isbn int) (*Book, error) {
	var b Book

	err := r.collection.FindOne(ctx, bson.M{"isbn": isbn}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find book by isbn: %w", err)
	}

	b.ID = b.MongoID.Hex()
	return &b, nil
}

func (r *MongoRepo) Create(ctx context.Context, book *Book) error {
	result, err := r.collection.InsertOne(ctx, book)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to convert inserted ID to ObjectID")
	}
	book.MongoID = oid
	book.ID = oid.Hex()

	return nil
}

// Update replaces every field the original write path sets: everything
// except author, which stays as registered.
func (r *MongoRepo) Update(ctx context.Context, isbn int, book *Book) (*Book, error) {
	update := bson.M{
		"$set": bson.M{
			"title":       book.Title,
			"description": book.Description,
			"price":       book.Price,
			"quantity":    book.Quantity,
			"isbn":        book.ISBN,
		},
	}

	var updated Book
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"isbn": isbn},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	updated.ID = updated.MongoID.Hex()
	return &updated, nil
}

func (r *MongoRepo) Delete(ctx context.Context, isbn int) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"isbn": isbn})
	if err != nil {
		return 0, fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return 0, ErrNotFound
	}

	return res.DeletedCount, nil
}
