package main

import (
	"log"
	"net/http"

	"github.com/HuongNguyenDev/beautycare-admin/internal/cache"
	"github.com/HuongNguyenDev/beautycare-admin/internal/config"
	dbpkg "github.com/HuongNguyenDev/beautycare-admin/internal/db"
	"github.com/HuongNguyenDev/beautycare-admin/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	c := cache.New(cfg)

	r := gin.Default()

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, c, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
