package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sreeja24H51A66DH/lendahand1/internal/config"
	"github.com/sreeja24H51A66DH/lendahand1/internal/db"
	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"github.com/sreeja24H51A66DH/lendahand1/internal/server"
	"github.com/sreeja24H51A66DH/lendahand1/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.User{}, &model.Item{}, &model.Conversation{}, &model.Message{}); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	uploader, err := storage.NewGCSUploader(context.Background(), cfg.StorageBucket, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer uploader.Close()

	srv := server.New(cfg, conn, uploader)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
