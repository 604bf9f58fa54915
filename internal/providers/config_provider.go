package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"aniboard/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "ANIBOARD_LOG_LEVEL")
	viper.BindEnv("anilist.token", "ANIBOARD_ANILIST_TOKEN")
	viper.BindEnv("anilist.cacheTTL", "ANIBOARD_ANILIST_CACHE_TTL")
	viper.BindEnv("cache.enabled", "ANIBOARD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "ANIBOARD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	applyAniListDefaults(&conf.AniList)

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "AniBoard"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

func applyAniListDefaults(c *structures.AniListConfig) {
	if c.BaseURL == "" {
		c.BaseURL = "https://graphql.anilist.co"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.MinRequestInterval <= 0 {
		c.MinRequestInterval = time.Second
	}
	if c.ActivityPageSize <= 0 {
		c.ActivityPageSize = 500
	}
}
