package main

import (
	"fmt"
	"log"

	"github.com/phatapon77/food-backend/configs"
	"github.com/phatapon77/food-backend/middlewares"
	"github.com/phatapon77/food-backend/routes"
	"github.com/phatapon77/food-backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed demo failed: %v", err)
	}

	// order feed สำหรับหน้า admin
	feed := ws.NewOrderFeed()
	go feed.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
