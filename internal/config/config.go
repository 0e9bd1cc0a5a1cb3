package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Geocoder struct {
		BaseURL string `mapstructure:"base_url"`
		ApiKey  string `mapstructure:"api_key"`
	} `mapstructure:"geocoder"`
	// Home is the reference location candidate distances are computed from.
	Home struct {
		Lat float64 `mapstructure:"lat"`
		Lng float64 `mapstructure:"lng"`
	} `mapstructure:"home"`
}

// LoadConfig reads .env plus an optional config.yaml from dir,
// environment variables winning over both.
func LoadConfig(dir string) (cfg Config, err error) {

	if err = godotenv.Load(filepath.Join(dir, ".env")); err != nil {
		log.Println("warning: .env file not found, use system environment.")
	}

	viper.AddConfigPath(dir)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	viper.BindEnv("geocoder.base_url", "GEOCODER_BASE_URL")
	viper.BindEnv("geocoder.api_key", "GEOCODER_API_KEY")
	viper.BindEnv("home.lat", "HOME_LAT")
	viper.BindEnv("home.lng", "HOME_LNG")

	viper.SetDefault("app.port", "5000")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("auth.token_lifespan", 24*time.Hour)
	viper.SetDefault("geocoder.base_url", "https://www.mapquestapi.com/geocoding/v1")

	err = viper.Unmarshal(&cfg)
	return
}
