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
	App          AppConfig
	Log          LogConfig
	DB           DBConfig
	HTTP         HTTPConfig
	Alerts       AlertsConfig
	Notification NotificationConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona usada para calcular "hoy" en las reglas de vencimiento
}

// Location devuelve la zona horaria configurada; UTC si el nombre no es válido.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
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
	MaxConns    int32
	MinConns    int32
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

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas; "*" permite todos
	SwaggerFile string // vacío o inexistente = sin /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AlertsConfig umbrales de las alertas de inventario.
type AlertsConfig struct {
	LowStockThreshold int // lotes con cantidad <= umbral son bajo stock
	NearExpiryDays    int // días restantes (inclusive) para considerar un lote por vencer
	RecentLimit       int // filas de los listados "recientes"
	ReportLimit       int // filas de los reportes top-N
}

// NotificationConfig opciones del agregador de notificaciones.
type NotificationConfig struct {
	LookupTimeout time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, HTTP_PORT, ALERT_LOW_STOCK_THRESHOLD, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// PORT se acepta por compatibilidad con despliegues anteriores; HTTP_PORT tiene prioridad.
	port := getInt(v, "PORT", 3301)

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "fruver-api"),
			Timezone: getString(v, "APP_TIMEZONE", "America/Bogota"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "fruver"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 10)),
			MinConns:    int32(getInt(v, "DB_MIN_CONNS", 1)),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", port),
			CORSOrigins: getString(v, "HTTP_CORS_ORIGINS", "*"),
			SwaggerFile: getString(v, "HTTP_SWAGGER_FILE", "./docs/swagger.json"),
		},
		Alerts: AlertsConfig{
			LowStockThreshold: getInt(v, "ALERT_LOW_STOCK_THRESHOLD", 10),
			NearExpiryDays:    getInt(v, "ALERT_NEAR_EXPIRY_DAYS", 3),
			RecentLimit:       getInt(v, "ALERT_RECENT_LIMIT", 5),
			ReportLimit:       getInt(v, "ALERT_REPORT_LIMIT", 5),
		},
		Notification: NotificationConfig{
			LookupTimeout: getDuration(v, "NOTIFICATION_LOOKUP_TIMEOUT", 5*time.Second),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Alerts.LowStockThreshold < 0 {
		return fmt.Errorf("ALERT_LOW_STOCK_THRESHOLD no puede ser negativo: %d", c.Alerts.LowStockThreshold)
	}
	if c.Alerts.NearExpiryDays < 0 {
		return fmt.Errorf("ALERT_NEAR_EXPIRY_DAYS no puede ser negativo: %d", c.Alerts.NearExpiryDays)
	}
	if c.Alerts.RecentLimit <= 0 || c.Alerts.ReportLimit <= 0 {
		return fmt.Errorf("ALERT_RECENT_LIMIT y ALERT_REPORT_LIMIT deben ser positivos")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("puerto HTTP inválido: %d", c.HTTP.Port)
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

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
