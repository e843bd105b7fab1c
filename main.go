package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"streamtube/domain/repository"
	"streamtube/infrastructure/auth"
	"streamtube/infrastructure/configuration"
	"streamtube/infrastructure/localstore"
	"streamtube/infrastructure/logger"
	"streamtube/infrastructure/persistence"
	"streamtube/infrastructure/pubsub"
	"streamtube/infrastructure/servicebus"
	httpHandler "streamtube/interfaces/http"
	"streamtube/server"
	"streamtube/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	// Remote user data gateway. MSSQL in production, PostgreSQL otherwise;
	// when neither connects the app still serves with local-only state.
	userDataDb, vendor, err := initiateUserDataDb()
	var userData repository.IUserData
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Remote store not available - user data stays local")
		userData = persistence.NewNullUserData()
	} else {
		if vendor == "mssql" {
			if err := persistence.EnsureUserDataSchemaMSSQL(userDataDb); err != nil {
				logger.GetLogger().WithField("error", err).Error("Failed ensuring user data schema")
			}
			userData = persistence.NewUserDataRepositoryMSSQL(userDataDb)
		} else {
			if err := persistence.EnsureUserDataSchema(userDataDb); err != nil {
				logger.GetLogger().WithField("error", err).Error("Failed ensuring user data schema")
			}
			userData = persistence.NewUserDataRepository(userDataDb)
		}
		logger.GetLogger().WithField("vendor", vendor).Info("Remote user data store connected")
	}

	// Durable local slot for the persisted store subset.
	snapshot := initiateSnapshot()

	// Optional comment archive.
	var commentArchive repository.ICommentArchive
	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - continuing without comment archive")
	} else if err := mongoDb.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB ping failed - continuing without comment archive")
	} else {
		commentArchive = persistence.NewCommentArchiveRepository(mongoDb, configuration.C.Database.Mongo.Name)
		logger.GetLogger().Info("MongoDB connected successfully")
	}

	// Optional upload catalog mirror.
	var catalog repository.ICatalog
	catalogDb, err := persistence.NewCatalogDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MySQL not available - continuing without upload catalog")
	} else {
		catalog = persistence.NewCatalogRepository(catalogDb)
	}

	activity := initiateActivityPublisher(ctx)

	store := usecase.NewStoreUsecase(snapshot)
	session := auth.NewSession()
	syncUsecase := usecase.NewSyncUsecase(store, userData, session, activity)
	authUsecase := usecase.NewAuthUsecase(session, app.SecretKey)

	authHandler := httpHandler.NewAuthHandler(authUsecase)
	videoHandler := httpHandler.NewVideoHandler(store, syncUsecase, catalog)
	channelHandler := httpHandler.NewChannelHandler(store, syncUsecase)
	commentHandler := httpHandler.NewCommentHandler(store, commentArchive)
	playlistHandler := httpHandler.NewPlaylistHandler(store)
	userDataHandler := httpHandler.NewUserDataHandler(store)

	router := server.InitiateRouter(
		authHandler,
		videoHandler,
		channelHandler,
		commentHandler,
		playlistHandler,
		userDataHandler,
		app.SecretKey,
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

func initiateUserDataDb() (*sql.DB, string, error) {
	env := os.Getenv("ENV")
	if v := os.Getenv("DB_VENDOR"); v == "mssql" || env == "production" || env == "prod" {
		db, err := persistence.NewMSSQLDB()
		if err != nil {
			return nil, "", err
		}
		return db, "mssql", nil
	}
	db, err := persistence.NewPostgreSQLDB()
	if err != nil {
		return nil, "", err
	}
	return db, "psql", nil
}

// initiateSnapshot picks the snapshot driver. Loss of the snapshot is never
// fatal: the store falls back to seeds plus remote rehydration.
func initiateSnapshot() repository.ISnapshot {
	storage := configuration.C.Storage
	if storage.Driver == "redis" {
		redisAddr := fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port)
		snapshot, err := localstore.NewRedisStore(
			redisAddr,
			configuration.C.RedisClient.Username,
			configuration.C.RedisClient.Password,
			storage.Namespace,
		)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Redis snapshot store not available - falling back to file store")
		} else {
			logger.GetLogger().Info("Redis snapshot store initialized")
			return snapshot
		}
	}
	snapshot, err := localstore.NewFileStore(storage.Path, storage.Namespace)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("File snapshot store not available - state will not survive restarts")
		return nil
	}
	return snapshot
}

// initiateActivityPublisher prefers Pub/Sub, then Service Bus, then none.
func initiateActivityPublisher(ctx context.Context) repository.IActivity {
	if projectID := configuration.C.Pubsub.ProjectID; projectID != "" {
		client, err := pubsub.NewPubSub(ctx, projectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while instantiate PubSub")
		} else {
			return pubsub.NewActivityPublisher(client, configuration.C.Pubsub.Topic)
		}
	}
	if namespace := configuration.C.ServiceBus.Namespace; namespace != "" {
		client, err := servicebus.NewServiceBus(namespace)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without activity events")
		} else {
			return servicebus.NewActivityBus(client, configuration.C.ServiceBus.Queue)
		}
	}
	return nil
}
