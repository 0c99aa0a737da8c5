package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppName            string
	Port               string
	Env                string
	Debug              bool
	LogLevel           string
	Magento            MagentoConfig
	Redis              RedisConfig
	Cache              CacheConfig
	FacetsWarmSchedule string
}

// MagentoConfig describes the upstream commerce GraphQL API.
type MagentoConfig struct {
	Endpoint  string // MAGENTO_ENDPOINT; empty means every upstream call fails with ErrNotConfigured
	StoreCode string // sent as the Store header unless the request overrides it
	Timeout   time.Duration

	// Store-specific attribute codes; generic fallbacks are added by the catalog package.
	ColorAttribute    string
	RoomAttribute     string
	MaterialAttribute string
	SizeAttribute     string
}

type RedisConfig struct {
	Addr     string // empty disables Redis, caches stay in memory
	Password string
	DB       int
}

type CacheConfig struct {
	FacetsTTL     time.Duration
	CategoriesTTL time.Duration
	SnapshotTTL   time.Duration
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")

	viper.SetDefault("APP_NAME", "storefront")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAGENTO_STORE_CODE", "default")
	viper.SetDefault("MAGENTO_TIMEOUT", "15s")
	viper.SetDefault("MAGENTO_COLOR_ATTRIBUTE", "benuta_color_filter")
	viper.SetDefault("MAGENTO_ROOM_ATTRIBUTE", "benuta_living_area")
	viper.SetDefault("MAGENTO_MATERIAL_ATTRIBUTE", "benuta_material")
	viper.SetDefault("MAGENTO_SIZE_ATTRIBUTE", "benuta_form_new")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_FACETS", "600s")
	viper.SetDefault("CACHE_TTL_CATEGORIES", "3600s")
	viper.SetDefault("SNAPSHOT_TTL", "1800s")
	viper.SetDefault("FACETS_WARM_SCHEDULE", "@every 10m")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := duration("MAGENTO_TIMEOUT")
	if err != nil {
		return nil, err
	}
	facetsTTL, err := duration("CACHE_TTL_FACETS")
	if err != nil {
		return nil, err
	}
	categoriesTTL, err := duration("CACHE_TTL_CATEGORIES")
	if err != nil {
		return nil, err
	}
	snapshotTTL, err := duration("SNAPSHOT_TTL")
	if err != nil {
		return nil, err
	}

	env := GetEnv("APP_ENV", "development")
	return &Config{
		AppName:  GetEnv("APP_NAME", "storefront"),
		Port:     GetEnv("PORT", "8080"),
		Env:      env,
		Debug:    GetEnv("DEBUG", "") == "true",
		LogLevel: GetEnv("LOG_LEVEL", "info"),
		Magento: MagentoConfig{
			Endpoint:          strings.TrimSpace(GetEnv("MAGENTO_ENDPOINT", "")),
			StoreCode:         strings.TrimSpace(GetEnv("MAGENTO_STORE_CODE", "default")),
			Timeout:           timeout,
			ColorAttribute:    GetEnv("MAGENTO_COLOR_ATTRIBUTE", "benuta_color_filter"),
			RoomAttribute:     GetEnv("MAGENTO_ROOM_ATTRIBUTE", "benuta_living_area"),
			MaterialAttribute: GetEnv("MAGENTO_MATERIAL_ATTRIBUTE", "benuta_material"),
			SizeAttribute:     GetEnv("MAGENTO_SIZE_ATTRIBUTE", "benuta_form_new"),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(GetEnv("REDIS_ADDR", "")),
			Password: GetEnv("REDIS_PASS", ""),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			FacetsTTL:     facetsTTL,
			CategoriesTTL: categoriesTTL,
			SnapshotTTL:   snapshotTTL,
		},
		FacetsWarmSchedule: GetEnv("FACETS_WARM_SCHEDULE", "@every 10m"),
	}, nil
}

func duration(key string) (time.Duration, error) {
	raw := GetEnv(key, viper.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
