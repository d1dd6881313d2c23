package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = "localhost:8080"
	defaultMigrations = "migrations"

	// Fallback secrets for local runs only. SECURITY GAP: a deployment must
	// set JWT_SECRET and VAULT_SECRET; the vault secret in particular should
	// come from a per-deployment secret store, never source text.
	defaultJWTSecret   = "dev-only-jwt-secret"
	defaultVaultSecret = "your-super-secret-key-for-crypto"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
	Vault  Vault
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
}

type Auth struct {
	JWTSecret string
}

type Vault struct {
	// Secret is the static symmetric-encryption secret the cipher key is
	// derived from.
	Secret string
}

// MustLoad reads configuration from the environment (.env is honored when
// present). A missing DATABASE_URI is a fatal startup condition.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		Auth:   Auth{JWTSecret: viper.GetString("jwt_secret")},
		Vault:  Vault{Secret: viper.GetString("vault_secret")},
	}

	if config.DB.DatabaseURI == "" {
		log.Fatalln("DATABASE_URI is required")
	}
	if config.DB.Migrations == "" {
		config.DB.Migrations = defaultMigrations
	}
	if config.Server.RunAddress == "" {
		config.Server.RunAddress = defaultRunAddress
	}
	if config.Auth.JWTSecret == "" {
		config.Auth.JWTSecret = defaultJWTSecret
	}
	if config.Vault.Secret == "" {
		config.Vault.Secret = defaultVaultSecret
	}

	return config
}
