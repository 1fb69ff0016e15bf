package config

import (
	"strings"

	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Telegram struct {
		Token       string
		AdminUserID int64 `mapstructure:"admin_user_id"`
		TimeoutSec  int   `mapstructure:"timeout_sec"`
	} `mapstructure:"telegram"`

	// Дополнения/переопределения к встроенной таблице usable weight.
	// Список, а не map: viper приводит ключи map к нижнему регистру.
	UsableWeights []usableweights.Entry `mapstructure:"usable_weights"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	// APP_POSTGRES_DSN, APP_TELEGRAM_TOKEN и т.д.
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("telegram.timeout_sec", 60)
	// без default AutomaticEnv не подхватит ключ при Unmarshal
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_user_id", 0)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
