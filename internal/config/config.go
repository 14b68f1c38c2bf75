package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 2333
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "hj_studio"
	defaultDBCharset  = "utf8mb4"
	defaultRedisURL   = "redis://localhost:6379/0"

	// DefaultAdminPassword matches the gate secret the site has always used.
	// The gate is a visibility toggle, not an auth boundary; override it via
	// config or HJ_ADMIN_PASSWORD anyway.
	DefaultAdminPassword = "hahaharry"
)

// AppConfig holds runtime startup configuration loaded from YAML and env.
type AppConfig struct {
	Port           int             `yaml:"port"`
	Env            string          `yaml:"env"` // "development" | "production"
	DSN            string          `yaml:"dsn"`
	Database       DatabaseConfig  `yaml:"database"`
	RedisURL       string          `yaml:"redis_url"`
	AllowedOrigins []string        `yaml:"allowed_origins"`
	JWTSecret      string          `yaml:"jwt_secret"`
	Timezone       string          `yaml:"timezone"`
	AdminPassword  string          `yaml:"admin_password"`
	Instagram      InstagramConfig `yaml:"instagram"`
	Bark           BarkConfig      `yaml:"bark"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

type InstagramConfig struct {
	AccessToken string `yaml:"access_token"`
	APIBase     string `yaml:"api_base"`
	CacheTTLMin int    `yaml:"cache_ttl_minutes"`
	SyncMin     int    `yaml:"sync_interval_minutes"`
}

type BarkConfig struct {
	Key       string `yaml:"key"`
	ServerURL string `yaml:"server_url"`
	SiteTitle string `yaml:"site_title"`
}

// Load reads the YAML config file, layers env overrides on top and fills
// defaults. A missing file is not an error: everything has a default or an
// env source, matching how the original site ran on env vars alone.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("HJ_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("DSN"); v != "" {
		c.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("HJ_ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("INSTAGRAM_ACCESS_TOKEN"); v != "" {
		c.Instagram.AccessToken = v
	}
	if v := os.Getenv("BARK_KEY"); v != "" {
		c.Bark.Key = v
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if strings.TrimSpace(c.Env) == "" {
		c.Env = defaultEnv
	}
	if c.RedisURL == "" {
		c.RedisURL = defaultRedisURL
	}
	if c.AdminPassword == "" {
		c.AdminPassword = DefaultAdminPassword
	}
	if c.Instagram.APIBase == "" {
		c.Instagram.APIBase = "https://graph.instagram.com"
	}
	if c.Instagram.CacheTTLMin <= 0 {
		c.Instagram.CacheTTLMin = 30
	}
	if c.Instagram.SyncMin <= 0 {
		c.Instagram.SyncMin = 20
	}
	if c.DSN == "" {
		c.DSN = c.buildDSN()
	}
}

func (c *AppConfig) buildDSN() string {
	db := c.Database
	if db.Host == "" {
		db.Host = defaultDBHost
	}
	if db.Port == 0 {
		db.Port = defaultDBPort
	}
	if db.User == "" {
		db.User = defaultDBUser
	}
	if db.Password == "" {
		db.Password = defaultDBPassword
	}
	if db.Name == "" {
		db.Name = defaultDBName
	}
	if db.Charset == "" {
		db.Charset = defaultDBCharset
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		db.User, db.Password, db.Host, db.Port, db.Name, db.Charset)
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development") ||
		strings.EqualFold(strings.TrimSpace(c.Env), "dev")
}
