package main

import (
	"bookstack/internal/config"
	"bookstack/internal/logger"
	"bookstack/internal/mongo"
	"bookstack/internal/mysql"
	"bookstack/internal/routing"
	"bookstack/pkg/middleware"
	"bookstack/pkg/session"
	"bookstack/pkg/user"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	db := mysql.LoadDB(cfg.MySQLDSN)
	defer db.Close()

	mongoDB := mongo.LoadDB(cfg.MongoURI, cfg.MongoDBName)

	logger := logger.Load()

	tokens := session.NewManager([]byte(cfg.JWTSecret), session.TokenTTL)

	r := mux.NewRouter()
	r.Use(middleware.Panic(logger))
	r.Use(middleware.CheckJWT(tokens, user.NewMySQLRepo(db)))

	routing.InitRoutes(r, db, mongoDB, tokens, logger)
	routing.StartServer(r, cfg.Addr, logger)
}
