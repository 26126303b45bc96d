package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// 環境變數前綴，例如 CAKE_DB_HOST 覆蓋 db.host
const envPrefix = "CAKE"

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
}

type ServerConfig struct {
	Address string
	Mode    string // gin 模式：debug、release、test
}

type DBConfig struct {
	Driver   string // postgres 或 sqlite
	Host     string
	User     string
	Password string
	Name     string
	Port     int
	SSLMode  string
	TimeZone string
	Path     string // sqlite 資料庫檔案路徑
}

type LogConfig struct {
	Level  string
	Format string // json 或 console
}

// Load 讀取 config.yaml 並套用環境變數覆蓋
// 未指定路徑時從 ./pkg/config 讀取；找不到配置文件時使用預設值
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./pkg/config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "cakes")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.path", "cakes.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
