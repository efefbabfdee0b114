package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados por STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Proveedores de identidad soportados por AUTH_PROVIDER.
const (
	AuthProviderSupabase = "supabase"
	AuthProviderLocal    = "local"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	Auth      AuthConfig
	HTTP      HTTPConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Inventory InventoryConfig
	Metrics   MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	Driver        string // postgres | memory
	DatabaseURL   string
	Host          string
	Port          int
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsDir string
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

// AuthConfig configuración del proveedor de identidad.
// Con Provider=supabase cada petición valida el token contra GoTrue; con local se firma y valida con JWTSecret.
type AuthConfig struct {
	Provider             string
	SupabaseURL          string
	ServiceRoleKey       string
	AnonKey              string
	JWTSecret            string
	JWTIssuer            string
	TokenMinutes         int
	TokenEndpointEnabled bool
	RequestTimeout       time.Duration
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	SwaggerEnabled bool
	SwaggerFile    string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig conexión opcional a Redis (límite de peticiones). Sin URL ni Address queda deshabilitado.
type RedisConfig struct {
	URL      string
	Address  string
	Password string
	DB       int
}

// Enabled indica si hay datos suficientes para conectar.
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Address != ""
}

// RateLimitConfig límites por ventana fija.
type RateLimitConfig struct {
	TokenRequestsPerMinute int
}

// InventoryConfig políticas del flujo de movimientos.
type InventoryConfig struct {
	DebitStockOnSalida      bool // descontar stock_actual al registrar una salida
	CompensateLotsOnEntrada bool // borrar lotes creados si falla el registro de la entrada
	ActaRetryAttempts       int  // reintentos al autogenerar el número de acta
}

// MetricsConfig exposición de métricas Prometheus.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATABASE_URL, SUPABASE_URL, etc.
func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-lotes-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: dbConfig(v),
		Auth: AuthConfig{
			Provider:             strings.ToLower(getString(v, "AUTH_PROVIDER", AuthProviderSupabase)),
			SupabaseURL:          strings.TrimRight(getString(v, "SUPABASE_URL", ""), "/"),
			ServiceRoleKey:       getString(v, "SUPABASE_SERVICE_ROLE_KEY", ""),
			AnonKey:              getString(v, "SUPABASE_ANON_KEY", ""),
			JWTSecret:            getString(v, "JWT_SECRET", ""),
			JWTIssuer:            getString(v, "JWT_ISSUER", "inventario-lotes-api"),
			TokenMinutes:         getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			TokenEndpointEnabled: getBool(v, "AUTH_TOKEN_ENDPOINT_ENABLED", false),
			RequestTimeout:       getDuration(v, "AUTH_REQUEST_TIMEOUT", 10*time.Second),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "PORT", getInt(v, "HTTP_PORT", 3001)),
			ReadTimeout:    getDuration(v, "HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:   getDuration(v, "HTTP_WRITE_TIMEOUT", 10*time.Second),
			SwaggerEnabled: getBool(v, "SWAGGER_ENABLED", true),
			SwaggerFile:    getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		Redis: RedisConfig{
			URL:      getString(v, "REDIS_URL", ""),
			Address:  getString(v, "REDIS_ADDRESS", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			TokenRequestsPerMinute: getInt(v, "RATE_LIMIT_TOKEN_PER_MINUTE", 10),
		},
		Inventory: InventoryConfig{
			DebitStockOnSalida:      getBool(v, "INVENTORY_DEBIT_STOCK_ON_SALIDA", false),
			CompensateLotsOnEntrada: getBool(v, "INVENTORY_COMPENSATE_LOTS_ON_ENTRADA", false),
			ActaRetryAttempts:       getInt(v, "INVENTORY_ACTA_RETRY_ATTEMPTS", 3),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
			Path:    getString(v, "METRICS_PATH", "/metrics"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDB lee solo la configuración de base de datos (herramientas de línea de comandos).
func LoadDB() DBConfig {
	return dbConfig(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func dbConfig(v *viper.Viper) DBConfig {
	return DBConfig{
		Driver:        strings.ToLower(getString(v, "STORE_DRIVER", StoreDriverPostgres)),
		DatabaseURL:   getString(v, "DATABASE_URL", ""),
		Host:          getString(v, "DB_HOST", "localhost"),
		Port:          getInt(v, "DB_PORT", 5432),
		User:          getString(v, "DB_USER", "postgres"),
		Password:      getString(v, "DB_PASSWORD", ""),
		DBName:        getString(v, "DB_NAME", "inventario"),
		SSLMode:       getString(v, "DB_SSLMODE", "disable"),
		MigrationsDir: getString(v, "MIGRATIONS_DIR", "pkg/migrate/migrations"),
	}
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("config: STORE_DRIVER desconocido %q", c.DB.Driver)
	}
	switch c.Auth.Provider {
	case AuthProviderSupabase:
		if c.Auth.SupabaseURL == "" || c.Auth.ServiceRoleKey == "" {
			return fmt.Errorf("config: SUPABASE_URL y SUPABASE_SERVICE_ROLE_KEY son requeridos con AUTH_PROVIDER=supabase")
		}
	case AuthProviderLocal:
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("config: JWT_SECRET es requerido con AUTH_PROVIDER=local")
		}
	default:
		return fmt.Errorf("config: AUTH_PROVIDER desconocido %q", c.Auth.Provider)
	}
	if c.Inventory.ActaRetryAttempts < 1 {
		c.Inventory.ActaRetryAttempts = 1
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

// getDuration acepta "15s", "2m" o un entero en segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
