package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookstack/pkg/book"
	"bookstack/pkg/handlers"
)

type mockBookService struct {
	mock.Mock
}

func (m *mockBookService) GetAll(ctx context.Context) ([]*book.Book, error) {
	args := m.Called()
	if b := args.Get(0); b != nil {
		return b.([]*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookService) GetByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	args := m.Called(title)
	if b := args.Get(0); b != nil {
		return b.([]*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookService) GetByISBN(ctx context.Context, isbn int) (*book.Book, error) {
	args := m.Called(isbn)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookService) Create(ctx context.Context, form *book.Form) (*book.Book, error) {
	args := m.Called(form)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookService) Update(ctx context.Context, isbn int, form *book.Form) (*book.Book, error) {
	args := m.Called(isbn, form)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookService) Delete(ctx context.Context, isbn int) (int64, error) {
	args := m.Called(isbn)
	return args.Get(0).(int64), args.Error(1)
}

func newBookRouter(h *handlers.BookHandler) *mux.Router {
	r := mux.NewRouter()
	inv := r.PathPrefix("/inventory").Subrouter()
	inv.HandleFunc("", h.GetInventory).Methods("GET")
	inv.HandleFunc("", h.Create).Methods("POST")
	inv.HandleFunc("/find/{isbn}", h.GetByISBN).Methods("GET")
	inv.HandleFunc("/{title}", h.GetByTitle).Methods("GET")
	inv.HandleFunc("/{isbn}/update", h.Update).Methods("PUT")
	inv.HandleFunc("/{isbn}", h.Delete).Methods("DELETE")
	return r
}

func TestGetInventory(t *testing.T) {
	m := new(mockBookService)
	router := newBookRouter(handlers.NewBookHandler(m, testLogger()))

	t.Run("success", func(t *testing.T) {
		m.On("GetAll").Return([]*book.Book{
			{Title: "X", ISBN: 123},
			{Title: "Y", ISBN: 456},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"isbn":123`)
		assert.Contains(t, rr.Body.String(), `"isbn":456`)
	})

	t.Run("store failure", func(t *testing.T) {
		m.On("GetAll").Return(nil, errors.New("mongo down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "mongo")
	})
}

func TestGetByTitle(t *testing.T) {
	m := new(mockBookService)
	router := newBookRouter(handlers.NewBookHandler(m, testLogger()))

	m.On("GetByTitle", "dune").Return([]*book.Book{{Title: "dune", ISBN: 123}}, nil)
	m.On("GetByTitle", "unknown").Return([]*book.Book{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/inventory/dune", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"dune"`)

	req = httptest.NewRequest(http.MethodGet, "/inventory/unknown", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestGetByISBN(t *testing.T) {
	m := new(mockBookService)
	router := newBookRouter(handlers.NewBookHandler(m, testLogger()))

	m.On("GetByISBN", 123).Return(&book.Book{Title: "X", ISBN: 123}, nil)
	m.On("GetByISBN", 999).Return(nil, book.ErrNotFound)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"found", "/inventory/find/123", http.StatusOK, `"isbn":123`},
		{"missing", "/inventory/find/999", http.StatusNotFound, "book not found"},
		{"non-numeric isbn", "/inventory/find/abc", http.StatusBadRequest, "invalid isbn"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, test.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, test.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), test.expectedBody)
		})
	}
}

func TestCreateBook(t *testing.T) {
	m := new(mockBookService)
	router := newBookRouter(handlers.NewBookHandler(m, testLogger()))

	m.On("Create", mock.MatchedBy(func(f *book.Form) bool { return f.Title == "X" })).
		Return(&book.Book{ID: "abc", Title: "X", Description: "d", Author: "a", Price: 9.99, Quantity: 3, ISBN: 123}, nil)
	m.On("Create", mock.MatchedBy(func(f *book.Form) bool { return f.Title == "" })).
		Return(nil, &book.ValidationError{Fields: []book.FieldError{
			{Location: "body", Param: "title", Msg: "is required"},
		}})

	t.Run("created echoes the isbn", func(t *testing.T) {
		body := `{"title":"X","description":"d","author":"a","price":9.99,"quantity":3,"isbn":123}`
		req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"isbn":123`)
	})

	t.Run("validation failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(`{"isbn":123}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), `"param":"title"`)
	})

	t.Run("bad json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(`{oops`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateBook(t *testing.T) {
	m := new(mockBookService)
	router := newBookRouter(handlers.NewBookHandler(m, testLogger()))

	m.On("Update", 123, mock.Anything).Return(&book.Book{Title: "X2", ISBN: 123}, nil)
	m.On("Update", 999, mock.Anything).Return(nil, book.ErrNotFound)

	body := `{"title":"X2","description":"d","price":9.99,"quantity":3,"isbn":123}`

	t.Run("updated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/inventory/123/update", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"title":"X2"`)
	})

	t.Run("nonexistent isbn", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/inventory/999/update", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "book not found")
	})
}

func TestDeleteBook(t *testing.T) {
	m := new(mockBookService)
	router := newBookRouter(handlers.NewBookHandler(m, testLogger()))

	m.On("Delete", 123).Return(int64(1), nil)
	m.On("Delete", 999).Return(int64(0), book.ErrNotFound)

	t.Run("deleted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/inventory/123", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"deleted":1`)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/inventory/999", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
