package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	Scene        SceneConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WAREHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"WAREHUB_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"WAREHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WAREHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WAREHUB_DB_DSN"`
	Driver string `envconfig:"WAREHUB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WAREHUB_DB_HOST"`
	LegacyPort     int    `envconfig:"WAREHUB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WAREHUB_DB_USER"`
	LegacyPassword string `envconfig:"WAREHUB_DB_PASSWORD"`
	LegacyName     string `envconfig:"WAREHUB_DB_NAME"`
	LegacySSLMode  string `envconfig:"WAREHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WAREHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WAREHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WAREHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WAREHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"WAREHUB_REDIS_URL"`
	Address      string        `envconfig:"WAREHUB_REDIS_ADDR"`
	Password     string        `envconfig:"WAREHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"WAREHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WAREHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WAREHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WAREHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WAREHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WAREHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"WAREHUB_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// SceneConfig carries the grid spacing and interaction constants used by the
// warehouse and stock overview scenes. Defaults match the values the WebGL
// frontend was tuned with.
type SceneConfig struct {
	WarehouseSpacingX float64       `envconfig:"WAREHUB_SCENE_WH_SPACING_X" default:"15"`
	WarehouseSpacingZ float64       `envconfig:"WAREHUB_SCENE_WH_SPACING_Z" default:"16"`
	StockSpacingX     float64       `envconfig:"WAREHUB_SCENE_STOCK_SPACING_X" default:"15"`
	StockSpacingZ     float64       `envconfig:"WAREHUB_SCENE_STOCK_SPACING_Z" default:"14"`
	ColumnsPerRow     int           `envconfig:"WAREHUB_SCENE_COLUMNS_PER_ROW" default:"3"`
	DragThresholdPx   float64       `envconfig:"WAREHUB_SCENE_DRAG_THRESHOLD_PX" default:"5"`
	HoverTweenTime    time.Duration `envconfig:"WAREHUB_SCENE_HOVER_TWEEN_TIME" default:"300ms"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"WAREHUB_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"WAREHUB_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   "/" + db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
