package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"cascosjhc/ledger/internal/domain"
)

// Config holds runtime configuration, including the fixed business
// enumerations (sellers, payment methods, owner secret) that the ledger core
// consumes but does not own.
type Config struct {
	Addr          string `envconfig:"ADDR" default:":8080"`
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"http://127.0.0.1:3000"`

	DatabaseURL   string `envconfig:"DATABASE_URL"`
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	DataFile      string `envconfig:"DATA_FILE" default:"data/cascos_app_state.json"`

	// StateKey is the fixed storage key the whole AppState document is
	// persisted under. It matches the legacy localStorage key so previously
	// stored data stays readable.
	StateKey string `envconfig:"STATE_KEY" default:"cascos_app_state"`

	// OwnerPassword is the administrator secret. Either a plain string or a
	// bcrypt hash ($2a$/$2b$/$2y$ prefix) is accepted.
	OwnerPassword string `envconfig:"OWNER_PASSWORD" default:"Cascos2026*"`

	AuthSecret string        `envconfig:"AUTH_SECRET"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"8h"`

	Sellers        []string `envconfig:"SELLERS" default:"Estedan,Javier,Andrés,Turiza,Yuriza,Germán"`
	PaymentMethods []string `envconfig:"PAYMENT_METHODS" default:"QR Bancolombia,Sistecrédito,Addi,Esmiopsion,Vantilisto,Efectivo,Bolt,Nequi JOSÉ,Bancolombia JOSÉ"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Locals returns the display metadata of the two locations.
func (c Config) Locals() []domain.LocalInfo {
	return []domain.LocalInfo{
		{Key: domain.LocalEsquina, Name: "Local Esquina", Color: "red"},
		{Key: domain.LocalPrincipal, Name: "Local Principal", Color: "yellow"},
	}
}
