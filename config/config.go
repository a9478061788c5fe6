package config

import (
	"github.com/spf13/viper"

	"github.com/Sarthak1642/file-organization/internal"
)

// CategoryRule 配置文件中的类别定义，顺序决定匹配优先级
type CategoryRule struct {
	Name       string
	Extensions []string
}

type Config struct {
	Organize struct {
		Mode string
		// mapstructure 默认只做大小写不敏感匹配，带下划线的键需要显式标注
		CheckDuplicates bool `mapstructure:"check_duplicates"`
	}
	History struct {
		Path string
	}
	Performance struct {
		Workers int
	}
	Logging struct {
		Level string
		File  string
	}
	// Categories 覆盖内置类别表，为空时使用默认表
	Categories []CategoryRule
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.file-organization")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/file-organization")

	viper.SetDefault("organize.mode", "Category Only")
	viper.SetDefault("organize.check_duplicates", false)
	viper.SetDefault("history.path", internal.DefaultHistoryPath)
	viper.SetDefault("performance.workers", internal.DefaultWorkers)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
