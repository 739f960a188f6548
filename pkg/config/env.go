package config

const (
	EnvPrefix = "GOLDENERA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv    = "GOLDENERA_APP_ENV"
	EnvPort      = "GOLDENERA_APP_PORT"
	EnvAPIPrefix = "GOLDENERA_API_PREFIX"
	EnvLogLevel  = "GOLDENERA_LOG_LEVEL"

	EnvMongoURI      = "GOLDENERA_MONGO_URI"
	EnvMongoDatabase = "GOLDENERA_MONGO_DATABASE"

	EnvRedisURL  = "GOLDENERA_REDIS_URL"
	EnvRedisAddr = "GOLDENERA_REDIS_ADDR"

	EnvCORSOrigins = "GOLDENERA_CORS_ORIGINS"

	EnvRateLimitLeadWindow     = "GOLDENERA_RATE_LIMIT_LEAD_WINDOW"
	EnvRateLimitLeadIPLimit    = "GOLDENERA_RATE_LIMIT_LEAD_IP_LIMIT"
	EnvRateLimitLeadEmailLimit = "GOLDENERA_RATE_LIMIT_LEAD_EMAIL_LIMIT"
)
