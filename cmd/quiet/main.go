package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/quiet-dev/quiet/internal/config"
	"github.com/quiet-dev/quiet/internal/handler"
	"github.com/quiet-dev/quiet/internal/logger"
	"github.com/quiet-dev/quiet/internal/router"
	"github.com/quiet-dev/quiet/internal/service"
	"github.com/quiet-dev/quiet/internal/storage"
	"github.com/quiet-dev/quiet/internal/storage/kv"
	"github.com/quiet-dev/quiet/internal/templates"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

	client, err := kv.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		logger.Log.Error("connecting to redis", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	tmpl, err := templates.Load()
	if err != nil {
		logger.Log.Error("loading templates", "error", err)
		os.Exit(1)
	}

	posts := service.NewPost(storage.NewPosts(kv.NewRedis(client, cfg.Redis.PostsPrefix)))
	profiles := service.NewProfile(storage.NewProfiles(kv.NewRedis(client, cfg.Redis.UsersPrefix)))

	h := handler.New(posts, profiles, tmpl)
	r := router.New(h, cfg.AllowedOrigins)

	logger.Log.Info("server started", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
