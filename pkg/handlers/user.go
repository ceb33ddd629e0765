package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"bookstack/pkg/book"
	"bookstack/pkg/user"
)

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserHandler struct {
	Service user.ServiceInterface
	Logger  *slog.Logger
}

func NewUserHandler(service user.ServiceInterface, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service: service,
		Logger:  logger,
	}
}

func (f *LoginForm) fieldErrors() []book.FieldError {
	var errs []book.FieldError
	if f.Username == "" {
		errs = append(errs, book.FieldError{Location: "body", Param: "username", Msg: "is required"})
	}
	if f.Password == "" {
		errs = append(errs, book.FieldError{Location: "body", Param: "password", Msg: "is required"})
	}
	return errs
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if errs := req.fieldErrors(); errs != nil {
		writeJSON(w, h.Logger, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	newUser, err := h.Service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			writeJSON(w, h.Logger, http.StatusConflict, map[string]any{
				"errors": []book.FieldError{
					{
						Location: "body",
						Param:    "username",
						Value:    req.Username,
						Msg:      "already exists",
					},
				},
			})
			return
		}
		h.Logger.Error("register", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "registration failed")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, newUser); ok {
		h.Logger.Info("register", "user", newUser.ID)
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	loggedIn, token, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			// the body must not reveal whether the username exists
			writeError(w, http.StatusUnauthorized, typeMessage, "invalid username or password")
			return
		}
		h.Logger.Error("login", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "login failed")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusOK, map[string]any{
		"user":  loggedIn,
		"token": token,
	}); ok {
		h.Logger.Info("login", "user", loggedIn.ID)
	}
}
