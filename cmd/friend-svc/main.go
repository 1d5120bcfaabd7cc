package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"friendsite/internal/api"
	"friendsite/internal/config"
	"friendsite/internal/dbmongo"
	"friendsite/internal/dbmysql"
	"friendsite/internal/friend"
	"friendsite/internal/notice"
	"friendsite/internal/push"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()
	logger := newLogger(cfg)

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	manager := notice.NewManager(cfg.Notification.Workers, cfg.Notification.ChannelBufferSize, logger)

	var publisher *push.RedisPublisher
	if cfg.Redis.Enabled {
		publisher, err = push.NewRedisPublisher(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatalf("failed to connect redis: %v", err)
		}
		manager.Subscribe(notice.NewPushObserver(publisher))
	}

	var mongoClient *dbmongo.MongoClient
	if cfg.Mongo.Enabled {
		mongoClient, err = dbmongo.NewMongoConnection(cfg)
		if err != nil {
			logger.Fatalf("failed to connect mongodb: %v", err)
		}
		manager.Subscribe(notice.NewArchiveObserver(dbmongo.NewMessageArchive(mongoClient)))
	}

	notifier := notice.NewNotifier(manager)
	friendStore := dbmysql.NewFriendStore(db)
	profileStore := dbmysql.NewProfileStore(db)
	codec := api.NewJSONCodec()

	friendService := friend.NewFriendService(friendStore, profileStore)
	applyService := friend.NewApplyService(friendStore, profileStore, notifier)
	handler := friend.NewHandler(friendService, applyService, codec, logger)

	dispatcher := api.NewDispatcher(logger)
	handler.Register(dispatcher)

	httpServer := api.NewHTTPServer(dispatcher, logger)
	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: httpServer.Router(),
	}

	go func() {
		logger.Infof("friend service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	manager.Shutdown()
	if publisher != nil {
		publisher.Close()
	}
	if mongoClient != nil {
		if err := mongoClient.Close(ctx); err != nil {
			logger.Errorf("mongodb disconnect: %v", err)
		}
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
