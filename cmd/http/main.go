package main

import (
	"context"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/app/contracts"
	"mediboard-service/internal/app/delivery/http/middlewares"
	"mediboard-service/internal/app/delivery/http/routers"
	"mediboard-service/internal/app/drivers/database"
	"mediboard-service/internal/app/drivers/logger"
	"mediboard-service/internal/app/drivers/messaging"
	"mediboard-service/internal/app/drivers/storage"
	"mediboard-service/internal/app/services/backend"
	"mediboard-service/internal/app/services/core/dashboard"
	"mediboard-service/internal/app/services/core/labtests"
	"mediboard-service/internal/app/services/core/resources"
	"mediboard-service/internal/app/services/shared/audit"
	"mediboard-service/internal/app/services/shared/cache"
	"mediboard-service/internal/app/services/shared/notifier"
	"mediboard-service/internal/app/services/shared/redis"
	sharedStorage "mediboard-service/internal/app/services/shared/storage"
	"mediboard-service/internal/pkg/hms_dto"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewBootstrapLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := rabbitMQ.Close(); err != nil {
		log.Printf("Error closing RabbitMQ connection: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	resourceCache := cache.NewResourceCache(redisRepository, bootstrap.InternalConfig)
	auditRepository := audit.NewMongoAuditRepository(bootstrap.MongoDB, bootstrap.InternalConfig)
	objectStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)

	notifierService, err := notifier.NewRabbitMQNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("Error initializing notifier", zap.Error(err))
	}

	// Backend
	restClient := backend.NewRestClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Resource clients the dashboard also reads from
	roomClient := newResourceClient[hms_dto.Room](restClient, resources.RoomDescriptor(bootstrap.InternalConfig), bootstrap.Logger)
	appointmentClient := newResourceClient[hms_dto.Appointment](restClient, resources.AppointmentDescriptor(bootstrap.InternalConfig), bootstrap.Logger)
	medicineClient := newResourceClient[hms_dto.Medicine](restClient, resources.MedicineDescriptor(bootstrap.InternalConfig), bootstrap.Logger)
	transactionClient := newResourceClient[hms_dto.Transaction](restClient, resources.TransactionDescriptor(bootstrap.InternalConfig), bootstrap.Logger)
	labTestClient := newResourceClient[hms_dto.LabTest](restClient, resources.LabTestDescriptor(bootstrap.InternalConfig), bootstrap.Logger)

	// Lab test workflow
	labTestUsecase := labtests.NewLabTestUsecase(
		labTestClient,
		resourceCache,
		notifierService,
		auditRepository,
		objectStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	labTestController := labtests.NewLabTestController(bootstrap.Logger, labTestUsecase, bootstrap.InternalConfig)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(
		transactionClient,
		roomClient,
		appointmentClient,
		labTestClient,
		medicineClient,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	dashboardController := dashboard.NewDashboardController(bootstrap.Logger, dashboardUsecase, bootstrap.InternalConfig)

	controllers := &routers.Controllers{
		Room:        newResourceController(roomClient, resourceCache, notifierService, auditRepository, resources.RoomDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Department:  buildResource[hms_dto.Department](restClient, resourceCache, notifierService, auditRepository, resources.DepartmentDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Patient:     buildResource[hms_dto.Patient](restClient, resourceCache, notifierService, auditRepository, resources.PatientDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Staff:       buildResource[hms_dto.StaffMember](restClient, resourceCache, notifierService, auditRepository, resources.StaffDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Appointment: newResourceController(appointmentClient, resourceCache, notifierService, auditRepository, resources.AppointmentDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Medicine:    newResourceController(medicineClient, resourceCache, notifierService, auditRepository, resources.MedicineDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Invoice:     buildResource[hms_dto.Invoice](restClient, resourceCache, notifierService, auditRepository, resources.InvoiceDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Transaction: newResourceController(transactionClient, resourceCache, notifierService, auditRepository, resources.TransactionDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		LabTest:     newResourceController(labTestClient, resourceCache, notifierService, auditRepository, resources.LabTestDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Settings:    buildResource[hms_dto.Settings](restClient, resourceCache, notifierService, auditRepository, resources.SettingsDescriptor(bootstrap.InternalConfig), bootstrap.InternalConfig, bootstrap.Logger),
		Workflow:    labTestController,
		Dashboard:   dashboardController,
	}

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, bootstrap.Logger, middlewares, controllers)
}

func newResourceClient[T hms_dto.Record](restClient contracts.RestClient, descriptor resources.Descriptor, logger *zap.Logger) *backend.ResourceClient[T] {
	return backend.NewResourceClient[T](restClient, descriptor.Name, descriptor.Path, logger)
}

func newResourceController[T hms_dto.Record](
	client resources.Client[T],
	resourceCache contracts.ResourceCache,
	notifierService contracts.Notifier,
	auditRepository contracts.AuditRepository,
	descriptor resources.Descriptor,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *resources.Controller[T] {
	usecase := resources.NewResourceUsecase(client, resourceCache, notifierService, auditRepository, descriptor, logger)
	return resources.NewController(logger, usecase, internalConfig)
}

func buildResource[T hms_dto.Record](
	restClient contracts.RestClient,
	resourceCache contracts.ResourceCache,
	notifierService contracts.Notifier,
	auditRepository contracts.AuditRepository,
	descriptor resources.Descriptor,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *resources.Controller[T] {
	client := newResourceClient[T](restClient, descriptor, logger)
	return newResourceController[T](client, resourceCache, notifierService, auditRepository, descriptor, internalConfig, logger)
}
