package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Metrics MetricsConfig
	Docs    DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitMB int // tamaño máximo del archivo subido
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BodyLimit devuelve el límite del cuerpo en bytes.
func (c HTTPConfig) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

// SessionConfig cookie de sesión firmada con JWT.
// Si SESSION_SECRET no está definido se genera uno aleatorio por proceso (Ephemeral = true):
// las cookies emitidas dejan de ser válidas al reiniciar, igual que los datos en memoria.
type SessionConfig struct {
	Secret     string
	TTLMinutes int
	Issuer     string
	Ephemeral  bool
}

// TTL duración de la sesión y de su archivo en memoria.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// MetricsConfig parámetros del cálculo de métricas.
type MetricsConfig struct {
	DivisionOffset decimal.Decimal // sumando de los denominadores de Rotación y Cobertura
}

// DocsConfig documentación OpenAPI servida en /docs.
type DocsConfig struct {
	SwaggerFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
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

	return fromViper(v)
}

// FromMap construye la configuración a partir de pares clave/valor, sin leer el entorno.
func FromMap(values map[string]string) (*Config, error) {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	offset, err := getDecimal(v, "METRICS_DIVISION_OFFSET", decimal.NewFromInt(1))
	if err != nil {
		return nil, err
	}
	if offset.IsNegative() {
		return nil, fmt.Errorf("config: METRICS_DIVISION_OFFSET no puede ser negativo: %s", offset)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "bi-inventario"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 50),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 120),
			Issuer:     getString(v, "SESSION_ISSUER", "bi-inventario"),
		},
		Metrics: MetricsConfig{DivisionOffset: offset},
		Docs: DocsConfig{
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.HTTP.Port <= 0 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido")
	}
	if cfg.HTTP.BodyLimitMB <= 0 {
		cfg.HTTP.BodyLimitMB = 50
	}
	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 120
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
		cfg.Session.Ephemeral = true
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) (decimal.Decimal, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido: %w", key, err)
	}
	return d, nil
}
