package book

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a catalog record. ISBN is the external lookup key used by the
// find/update/delete routes; the data model does not make it unique.
type Book struct {
	MongoID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `bson:"-" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Author      string             `bson:"author" json:"author"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	ISBN        int                `bson:"isbn" json:"isbn"`
}

// ErrNotFound indicates no book matched the given isbn.
var ErrNotFound = errors.New("book not found")

type Repository interface {
	GetAll(ctx context.Context) ([]*Book, error)
	GetByTitle(ctx context.Context, title string) ([]*Book, error)
	GetByISBN(ctx context.Context, isbn int) (*Book, error)
	Create(ctx context.Context, book *Book) error
	Update(ctx context.Context, isbn int, book *Book) (*Book, error)
	Delete(ctx context.Context, isbn int) (int64, error)
}
