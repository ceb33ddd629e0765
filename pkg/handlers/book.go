package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"bookstack/pkg/book"
)

const (
	typeError   string = "error"
	typeMessage string = "message"

	muxVarTitle string = "title"
	muxVarISBN  string = "isbn"
)

type BookHandler struct {
	Service book.ServiceInterface
	Logger  *slog.Logger
}

func NewBookHandler(service book.ServiceInterface, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *BookHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	books, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("list inventory", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to list inventory")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, books)
}

func (h *BookHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title, ok := mux.Vars(r)[muxVarTitle]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid title")
		return
	}

	books, err := h.Service.GetByTitle(r.Context(), title)
	if err != nil {
		h.Logger.Error("search by title", "error", err, muxVarTitle, title)
		writeError(w, http.StatusInternalServerError, typeError, "failed to search inventory")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, books)
}

func (h *BookHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn, ok := parseISBNVar(w, r)
	if !ok {
		return
	}

	found, err := h.Service.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeMessage, "book not found in inventory")
			return
		}
		h.Logger.Error("search by isbn", "error", err, muxVarISBN, isbn)
		writeError(w, http.StatusInternalServerError, typeError, "failed to search inventory")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, found)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form book.Form
	if ok := DecodeJSONBody(w, r, &form); !ok {
		return
	}

	created, err := h.Service.Create(r.Context(), &form)
	if err != nil {
		var vErr *book.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, h.Logger, http.StatusUnprocessableEntity, map[string]any{"errors": vErr.Fields})
			return
		}
		h.Logger.Error("create book", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to create book")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, created); ok {
		h.Logger.Info("book created", muxVarISBN, created.ISBN)
	}
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	isbn, ok := parseISBNVar(w, r)
	if !ok {
		return
	}

	var form book.Form
	if ok := DecodeJSONBody(w, r, &form); !ok {
		return
	}

	updated, err := h.Service.Update(r.Context(), isbn, &form)
	if err != nil {
		var vErr *book.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeJSON(w, h.Logger, http.StatusUnprocessableEntity, map[string]any{"errors": vErr.Fields})
		case errors.Is(err, book.ErrNotFound):
			writeError(w, http.StatusNotFound, typeMessage, "book not found in inventory")
		default:
			h.Logger.Error("update book", "error", err, muxVarISBN, isbn)
			writeError(w, http.StatusInternalServerError, typeError, "failed to update book")
		}
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusOK, updated); ok {
		h.Logger.Info("book updated", muxVarISBN, isbn)
	}
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	isbn, ok := parseISBNVar(w, r)
	if !ok {
		return
	}

	deleted, err := h.Service.Delete(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeMessage, "book not found in inventory")
			return
		}
		h.Logger.Error("delete book", "error", err, muxVarISBN, isbn)
		writeError(w, http.StatusInternalServerError, typeError, "failed to delete book")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusOK, map[string]int64{"deleted": deleted}); ok {
		h.Logger.Info("book deleted", muxVarISBN, isbn)
	}
}

func parseISBNVar(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw, ok := mux.Vars(r)[muxVarISBN]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid isbn")
		return 0, false
	}

	isbn, err := book.ParseISBN(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid isbn")
		return 0, false
	}

	return isbn, true
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(resp); err != nil {
		logger.Error("failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
