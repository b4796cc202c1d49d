package providers

import (
	"ctfwatch/internal/structures"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "CTFWATCH_LOG_LEVEL")
	viper.BindEnv("source.baseUrl", "CTFWATCH_SOURCE_URL")
	viper.BindEnv("source.windowDays", "CTFWATCH_WINDOW_DAYS")
	viper.BindEnv("watch.sweepInterval", "CTFWATCH_SWEEP_INTERVAL")
	viper.BindEnv("notify.webhookUrl", "CTFWATCH_WEBHOOK_URL")
	viper.BindEnv("cache.enabled", "CTFWATCH_CACHE_ENABLED")
	viper.BindEnv("cache.size", "CTFWATCH_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "CTFWatch"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
