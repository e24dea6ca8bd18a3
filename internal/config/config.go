package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type EventsConfig struct {
	APIKey         string
	BaseURL        string
	Market         string
	DefaultCountry string
	DefaultKeyword string
	DefaultCity    string
	PageSize       int
	Timeout        time.Duration
	LeadDays       int
	RefreshCron    string
}

type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Units   string
	Lang    string
}

type DefaultsConfig struct {
	City    string
	Country string
}

type AdminConfig struct {
	Email    string
	Password string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Timezone    string
	HTTP        HTTPConfig
	Session     SessionConfig
	Redis       RedisConfig
	Events      EventsConfig
	Weather     WeatherConfig
	Defaults    DefaultsConfig
	Admin       AdminConfig
}

// legacyEnv maps config keys to the unprefixed variable names older
// deployments export.
var legacyEnv = map[string]string{
	"session.secret":        "SECRET_KEY",
	"events.apikey":         "TICKETMASTER_API_KEY",
	"events.market":         "TICKETMASTER_MARKET",
	"events.defaultcountry": "TICKETMASTER_DEFAULT_COUNTRY",
	"events.defaultkeyword": "TICKETMASTER_DEFAULT_KEYWORD",
	"weather.apikey":        "OPENWEATHER_API_KEY",
	"defaults.city":         "DEFAULT_CITY",
	"defaults.country":      "DEFAULT_COUNTRY",
}

func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("TOURBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		if err := v.BindEnv(key, "TOURBOOK_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) Validate() error {
	if c.Environment == "production" && (c.Session.Secret == "" || c.Session.Secret == devSecret) {
		return errors.New("session secret must be set in production")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location falls back to UTC; Validate has already rejected unknown names.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

const devSecret = "dev-secret"

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("loglevel", "")
	v.SetDefault("timezone", "UTC")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("session.secret", devSecret)
	v.SetDefault("session.cookiename", "tourbook_session")
	v.SetDefault("session.ttl", "168h")
	v.SetDefault("session.secure", false)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("events.baseurl", "https://app.ticketmaster.com/discovery/v2")
	v.SetDefault("events.market", "")
	v.SetDefault("events.defaultcountry", "US")
	v.SetDefault("events.defaultkeyword", "tour")
	v.SetDefault("events.defaultcity", "")
	v.SetDefault("events.pagesize", 32)
	v.SetDefault("events.timeout", "8s")
	v.SetDefault("events.leaddays", 30)
	v.SetDefault("events.refreshcron", "0 0 */1 * * *") // hourly

	v.SetDefault("weather.baseurl", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.timeout", "6s")
	v.SetDefault("weather.units", "metric")
	v.SetDefault("weather.lang", "ru")

	v.SetDefault("defaults.city", "Kyiv")
	v.SetDefault("defaults.country", "Ukraine")

	v.SetDefault("admin.email", "admin@mikola.com")
	v.SetDefault("admin.password", "admin123")
}
