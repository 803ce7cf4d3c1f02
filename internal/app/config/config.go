package config

import (
	"mediboard-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mediboard"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "lab-reports"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "console"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Backend: Backend{
			BaseUrl:            utils.GetEnvString("HMS_BACKEND_BASE_URL", "http://localhost:5000"),
			APIPrefix:          utils.GetEnvString("HMS_BACKEND_API_PREFIX", "/api"),
			TimeoutInSeconds:   utils.GetEnvInt("HMS_BACKEND_TIMEOUT_IN_SECONDS", 15),
			RateLimitPerSecond: utils.GetEnvFloat("HMS_BACKEND_RATE_LIMIT_PER_SECOND", 50),
			RateBurst:          utils.GetEnvInt("HMS_BACKEND_RATE_BURST", 25),
		},
		Cache: Cache{
			ListTTLInSeconds: utils.GetEnvInt("CACHE_LIST_TTL_IN_SECONDS", 30),
		},
		Notification: Notification{
			QueueName: utils.GetEnvString("NOTIFICATION_QUEUE_NAME", "console_notification_queue"),
		},
		Audit: Audit{
			DbName:         utils.GetEnvString("AUDIT_DB_NAME", "mediboard"),
			CollectionName: utils.GetEnvString("AUDIT_COLLECTION_NAME", "audit_entries"),
		},
		Storage: Storage{
			ReportBucketName:        utils.GetEnvString("STORAGE_REPORT_BUCKET_NAME", "lab-reports"),
			ReportMaxUploadSizeInMB: utils.GetEnvInt64("STORAGE_REPORT_MAX_UPLOAD_SIZE_IN_MB", 5),
			LowStockThreshold:       utils.GetEnvInt("DASHBOARD_LOW_STOCK_THRESHOLD", 10),
		},
	}
}
