package routing

import (
	"database/sql"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"bookstack/pkg/book"
	"bookstack/pkg/handlers"
	"bookstack/pkg/session"
	"bookstack/pkg/user"
)

func InitRoutes(api *mux.Router, db *sql.DB, mongoDB *mongo.Database, tokens *session.Manager, logger *slog.Logger) {

	userService := user.NewService(user.NewMySQLRepo(db), tokens)
	userHandler := handlers.NewUserHandler(userService, logger)

	bookService := book.NewService(book.NewMongoRepo(mongoDB))
	bookHandler := handlers.NewBookHandler(bookService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	/* auth routes, open */
	api.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	api.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")

	/* inventory routes, token gated; /find before /{title} so the
	   literal segment wins */
	inventoryRouter := api.PathPrefix("/inventory").Subrouter()

	inventoryRouter.HandleFunc("", bookHandler.GetInventory).Methods("GET")
	inventoryRouter.HandleFunc("", bookHandler.Create).Methods("POST")
	inventoryRouter.HandleFunc("/find/{isbn}", bookHandler.GetByISBN).Methods("GET")
	inventoryRouter.HandleFunc("/{title}", bookHandler.GetByTitle).Methods("GET")
	inventoryRouter.HandleFunc("/{isbn}/update", bookHandler.Update).Methods("PUT")
	inventoryRouter.HandleFunc("/{isbn}", bookHandler.Delete).Methods("DELETE")
}

func StartServer(r *mux.Router, addr string, logger *slog.Logger) {
	logger.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
