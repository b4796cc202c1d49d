package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type SourceConfig struct {
	BaseURL    string        `yaml:"baseUrl" validate:"required|fullUrl"`
	Timeout    time.Duration `yaml:"timeout" validate:"required|min:1"`
	Limit      int           `yaml:"limit" validate:"required|min:1"`
	WindowDays int           `yaml:"windowDays" validate:"required|min:1|max:100"`
}

type FilterConfig struct {
	Restrictions []string `yaml:"restrictions" validate:"required|minLen:1"`
	DropFields   []string `yaml:"dropFields"`
}

type WatchConfig struct {
	SweepInterval time.Duration `yaml:"sweepInterval" validate:"required|min:1"`
	FilePath      string        `yaml:"filePath" validate:"required|unixPath"`
}

type BaselineConfig struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

type NotifyConfig struct {
	WebhookURL string        `yaml:"webhookUrl"`
	Timeout    time.Duration `yaml:"timeout"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Source    SourceConfig   `yaml:"source"`
	Filter    FilterConfig   `yaml:"filter"`
	Watch     WatchConfig    `yaml:"watch"`
	Baseline  BaselineConfig `yaml:"baseline"`
	Notify    NotifyConfig   `yaml:"notify"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
