package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "WAREHUB"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv = "WAREHUB_APP_ENV"
	EnvPort   = "WAREHUB_APP_PORT"

	EnvDBDSN  = "WAREHUB_DB_DSN"
	EnvDBHost = "WAREHUB_DB_HOST"
	EnvDBUser = "WAREHUB_DB_USER"
	EnvDBName = "WAREHUB_DB_NAME"

	EnvRedisURL = "WAREHUB_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
