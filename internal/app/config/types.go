package config

type (
	InternalConfig struct {
		App          App
		Backend      Backend
		Cache        Cache
		Notification Notification
		Audit        Audit
		Storage      Storage
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
	}

	// Backend points the console at the remote hospital REST API. The base
	// URL is configured exactly once here; no other component may build one.
	Backend struct {
		BaseUrl            string
		APIPrefix          string
		TimeoutInSeconds   int
		RateLimitPerSecond float64
		RateBurst          int
	}

	Cache struct {
		ListTTLInSeconds int
	}

	Notification struct {
		QueueName string
	}

	Audit struct {
		DbName         string
		CollectionName string
	}

	Storage struct {
		ReportBucketName        string
		ReportMaxUploadSizeInMB int64
		LowStockThreshold       int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
