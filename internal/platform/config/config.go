package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Cfg 是一个全局变量，用于存储所有应用程序的配置
var Cfg *Config

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Uploads    UploadsConfig    `mapstructure:"uploads"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Examples   ExamplesConfig   `mapstructure:"examples"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Mode    string     `mapstructure:"mode"`
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`

	// AllowGlobalWordList 控制 /api/words 在不带userId时是否返回全部用户的单词。
	// 这是为首页保留的兼容行为，存在越权读取的风险，可以在这里关掉。
	AllowGlobalWordList bool `mapstructure:"allowGlobalWordList"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了数据库和缓存相关的配置
type DatabaseConfig struct {
	Sqlite SqliteConfig `mapstructure:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// SqliteConfig 定义了SQLite的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig 定义了Redis的配置。Address为空表示完全不启用Redis。
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// UploadsConfig 定义了上传文件的存储位置
type UploadsConfig struct {
	AvatarDir string `mapstructure:"avatarDir"`
}

// DictionaryConfig 定义了在线词典的配置
type DictionaryConfig struct {
	RemoteBaseURL string `mapstructure:"remoteBaseURL"`
}

// ExamplesConfig 定义了例句查询接口的配置
type ExamplesConfig struct {
	// MaxPerMinute 单个IP每分钟的例句查询上限，0表示不限流
	MaxPerMinute int `mapstructure:"maxPerMinute"`
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 它会在指定的路径中查找名为 config.yaml 的文件
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 可以添加多个路径，Viper会按顺序查找
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 允许通过环境变量覆盖配置，例如 SERVER_ADDRESS=:8888
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowGlobalWordList", true)
	v.SetDefault("database.sqlite.path", "vocabulary.db")
	v.SetDefault("uploads.avatarDir", "uploads/avatars")
	v.SetDefault("dictionary.remoteBaseURL", "https://api.dictionaryapi.dev/api/v2/entries/en/")
	v.SetDefault("examples.maxPerMinute", 0)

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺失时依赖默认值和环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	Cfg = &cfg
	return Cfg, nil
}
