package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	DB         DBConfig
	JWT        JWTConfig
	HTTP       HTTPConfig
	Redis      RedisConfig
	Rabbit     RabbitConfig
	Backoffice BackofficeConfig
	Cache      CacheConfig
	Reconcile  ReconcileConfig
	Dashboard  DashboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host      string
	Port      int
	RateLimit int // peticiones por minuto e IP en /api/auth
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig configuración del almacén de sesiones y borradores de pedido.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
	DraftTTL   time.Duration
}

// RabbitConfig configuración del broker de eventos de cocina. URL vacía = publicación deshabilitada.
type RabbitConfig struct {
	URL      string
	Exchange string
}

// BackofficeConfig API REST externa de cupones y clientes.
type BackofficeConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig caché local (SQLite) de cupones para modo sin conexión.
type CacheConfig struct {
	CouponPath string
}

// ReconcileConfig parámetros del descuento de stock por pedido.
type ReconcileConfig struct {
	MaxAttempts int           // intentos de compare-and-swap por ingrediente
	Concurrency int           // ingredientes procesados en paralelo
	BaseBackoff time.Duration // espera base entre reintentos (exponencial + jitter)
}

// DashboardConfig parámetros del resumen de ventas.
type DashboardConfig struct {
	LowStockThreshold int64 // insumos con cantidad menor o igual se listan como bajos
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "comandera"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "comandera"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "JWT_ISSUER", "comandera"),
		},
		HTTP: HTTPConfig{
			Host:      getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:      getInt(v, "HTTP_PORT", 8080),
			RateLimit: getInt(v, "HTTP_RATE_LIMIT", 30),
		},
		Redis: RedisConfig{
			Addr:       getString(v, "REDIS_ADDR", "localhost:6379"),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			SessionTTL: time.Duration(getInt(v, "SESSION_TTL_MINUTES", 720)) * time.Minute,
			DraftTTL:   time.Duration(getInt(v, "DRAFT_TTL_MINUTES", 720)) * time.Minute,
		},
		Rabbit: RabbitConfig{
			URL:      getString(v, "RABBITMQ_URL", ""),
			Exchange: getString(v, "RABBITMQ_EXCHANGE", "comandera.orders"),
		},
		Backoffice: BackofficeConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKOFFICE_URL", "https://sartaj.azurewebsites.net/api"), "/"),
			Timeout: time.Duration(getInt(v, "BACKOFFICE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Cache: CacheConfig{
			CouponPath: getString(v, "COUPON_CACHE_PATH", "data/coupons.db"),
		},
		Reconcile: ReconcileConfig{
			MaxAttempts: getInt(v, "RECONCILE_MAX_ATTEMPTS", 5),
			Concurrency: getInt(v, "RECONCILE_CONCURRENCY", 8),
			BaseBackoff: time.Duration(getInt(v, "RECONCILE_BASE_BACKOFF_MS", 20)) * time.Millisecond,
		},
		Dashboard: DashboardConfig{
			LowStockThreshold: int64(getInt(v, "LOW_STOCK_THRESHOLD", 5)),
		},
	}

	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
