package config

const EnvPrefix = "CROPSENSE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "CROPSENSE_DB_DSN"
	EnvDBHost = "CROPSENSE_DB_HOST"
	EnvDBUser = "CROPSENSE_DB_USER"
	EnvDBName = "CROPSENSE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
