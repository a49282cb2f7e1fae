package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"

	"datecalc/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "DATECALC_LOG_LEVEL")
	viper.BindEnv("calendar.identifier", "DATECALC_CALENDAR")
	viper.BindEnv("history.saveInterval", "DATECALC_SAVE_INTERVAL")
	viper.BindEnv("history.maxEntries", "DATECALC_HISTORY_MAX_ENTRIES")
	viper.BindEnv("cache.enabled", "DATECALC_CACHE_ENABLED")
	viper.BindEnv("cache.size", "DATECALC_CACHE_SIZE")

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

	conf.AppName = "DateCalcService"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
