package main

import (
	"context"
	"hospadmin-service/internal/app/config"
	"hospadmin-service/internal/app/delivery/http/controllers"
	"hospadmin-service/internal/app/delivery/http/middlewares"
	"hospadmin-service/internal/app/delivery/http/routers"
	"hospadmin-service/internal/app/drivers/database"
	"hospadmin-service/internal/app/drivers/logger"
	"hospadmin-service/internal/app/drivers/mailer"
	"hospadmin-service/internal/app/drivers/messaging"
	"hospadmin-service/internal/app/drivers/storage"
	"hospadmin-service/internal/app/services/agenda"
	"hospadmin-service/internal/app/services/auth"
	"hospadmin-service/internal/app/services/catalogs"
	"hospadmin-service/internal/app/services/episodes"
	"hospadmin-service/internal/app/services/patients"
	"hospadmin-service/internal/app/services/shared/notifications"
	sharedredis "hospadmin-service/internal/app/services/shared/redis"
	"hospadmin-service/internal/app/services/shared/session"
	sharedstorage "hospadmin-service/internal/app/services/shared/storage"
	"hospadmin-service/internal/app/services/stats"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB, driverConfig.MongoDB.DbName); err != nil {
		logrus.Fatalf("Error ensuring MongoDB indexes: %v", err)
	}
	cancelIndexes()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	smtpMailer := mailer.NewSMTPClient(bootstrap.DriverConfig)

	queueService, err := notifications.NewService(bootstrap.RabbitMQ, bootstrap.Logger, 1)
	if err != nil {
		logrus.Fatalf("Error setting up discharge queue: %v", err)
	}

	worker := notifications.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, queueService, smtpMailer)
	workerStop, err := worker.Start(context.Background())
	if err != nil {
		logrus.Fatalf("Error starting discharge worker: %v", err)
	}
	bootstrap.WorkerStop = workerStop

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB.Database(dbName))
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, sessionService)

	// Patients
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	// Episodes
	episodeMongoRepository := episodes.NewEpisodeMongoRepository(bootstrap.MongoDB, dbName)
	episodeUsecase := episodes.NewEpisodeUsecase(
		episodeMongoRepository,
		patientMongoRepository,
		queueService,
		minioStorage,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.Logger,
	)
	episodeController := controllers.NewEpisodeController(bootstrap.Logger, episodeUsecase)

	// Agenda
	slotMongoRepository := agenda.NewSlotMongoRepository(bootstrap.MongoDB, dbName)
	consultationMongoRepository := agenda.NewConsultationMongoRepository(bootstrap.MongoDB, dbName)
	agendaUsecase := agenda.NewAgendaUsecase(slotMongoRepository, consultationMongoRepository, patientMongoRepository)
	agendaController := controllers.NewAgendaController(bootstrap.Logger, agendaUsecase)

	// Catalogs
	catalogMongoRepository := catalogs.NewCatalogMongoRepository(bootstrap.MongoDB, dbName)
	catalogUsecase := catalogs.NewCatalogUsecase(catalogMongoRepository)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Statistics
	statsUsecase := stats.NewStatsUsecase(consultationMongoRepository, episodeMongoRepository, slotMongoRepository)
	statsController := controllers.NewStatsController(bootstrap.Logger, statsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		patientController,
		episodeController,
		agendaController,
		catalogController,
		statsController,
	)
}
