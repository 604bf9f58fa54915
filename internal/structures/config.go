package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type AniListConfig struct {
	BaseURL            string        `yaml:"baseUrl" validate:"required|fullUrl"`
	Token              string        `yaml:"token"`
	Timeout            time.Duration `yaml:"timeout" validate:"required|min:1"`
	CacheTTL           time.Duration `yaml:"cacheTTL"`
	MinRequestInterval time.Duration `yaml:"minRequestInterval"`
	ActivityPageSize   int           `yaml:"activityPageSize"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	AniList   AniListConfig `yaml:"anilist"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
