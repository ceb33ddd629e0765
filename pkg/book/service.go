package book

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Form is the decoded request body for create/update. Number fields are
// pointers so that an absent field is distinguishable from a zero.
type Form struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	ISBN        *int     `json:"isbn"`
}

type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

// ValidationError reports the required fields a request body is missing.
// It is returned before any store call is made.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	params := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		params[i] = f.Param
	}
	return "missing required fields: " + strings.Join(params, ", ")
}

func (f *Form) validate(requireAuthor bool) error {
	var fields []FieldError

	missing := func(param string) {
		fields = append(fields, FieldError{
			Location: "body",
			Param:    param,
			Msg:      "is required",
		})
	}

	if f.Title == "" {
		missing("title")
	}
	if f.Description == "" {
		missing("description")
	}
	if requireAuthor && f.Author == "" {
		missing("author")
	}
	if f.Price == nil {
		missing("price")
	}
	if f.Quantity == nil {
		missing("quantity")
	}
	if f.ISBN == nil {
		missing("isbn")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type ServiceInterface interface {
	GetAll(ctx context.Context) ([]*Book, error)
	GetByTitle(ctx context.Context, title string) ([]*Book, error)
	GetByISBN(ctx context.Context, isbn int) (*Book, error)
	Create(ctx context.Context, form *Form) (*Book, error)
	Update(ctx context.Context, isbn int, form *Form) (*Book, error)
	Delete(ctx context.Context, isbn int) (int64, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) GetAll(ctx context.Context) ([]*Book, error) {
	return s.Repo.GetAll(ctx)
}

func (s *Service) GetByTitle(ctx context.Context, title string) ([]*Book, error) {
	return s.Repo.GetByTitle(ctx, title)
}

func (s *Service) GetByISBN(ctx context.Context, isbn int) (*Book, error) {
	return s.Repo.GetByISBN(ctx, isbn)
}

func (s *Service) Create(ctx context.Context, form *Form) (*Book, error) {
	if err := form.validate(true); err != nil {
		return nil, err
	}

	b := &Book{
		Title:       form.Title,
		Description: form.Description,
		Author:      form.Author,
		Price:       *form.Price,
		Quantity:    *form.Quantity,
		ISBN:        *form.ISBN,
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update validates everything the update write sets; author is not part
// of an update and is not required here.
func (s *Service) Update(ctx context.Context, isbn int, form *Form) (*Book, error) {
	if err := form.validate(false); err != nil {
		return nil, err
	}

	b := &Book{
		Title:       form.Title,
		Description: form.Description,
		Price:       *form.Price,
		Quantity:    *form.Quantity,
		ISBN:        *form.ISBN,
	}

	return s.Repo.Update(ctx, isbn, b)
}

func (s *Service) Delete(ctx context.Context, isbn int) (int64, error) {
	return s.Repo.Delete(ctx, isbn)
}

// ParseISBN converts a path segment to the numeric isbn key.
func ParseISBN(raw string) (int, error) {
	isbn, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid isbn %q", raw)
	}
	return isbn, nil
}
