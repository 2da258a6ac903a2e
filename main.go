package main

import (
	"fmt"
	"log"

	"github.com/IEarari/Seeds/configs"
	"github.com/IEarari/Seeds/middlewares"
	"github.com/IEarari/Seeds/routes"
	"github.com/IEarari/Seeds/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedSuperAdmin(db, cfg); err != nil {
		log.Fatalf("seed super admin failed: %v", err)
	}
	if err := configs.SeedMenus(db); err != nil {
		log.Fatalf("seed menus failed: %v", err)
	}

	// realtime status hub
	hub := ws.NewStatusHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("API listening at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
