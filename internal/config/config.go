package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/somonplay/payment-service/pkg/mq"
	"github.com/somonplay/payment-service/pkg/mysql"
	"github.com/somonplay/payment-service/pkg/referralgateway"
	"github.com/spf13/viper"
)

type Config struct {
	API             API                    `mapstructure:"api"`
	Database        mysql.Config           `mapstructure:"database"`
	RabbitMQ        mq.Config              `mapstructure:"rabbitmq"`
	ReferralGateway referralgateway.Config `mapstructure:"referral_gateway"`
	Rewards         Rewards                `mapstructure:"rewards"`
	Outbox          Outbox                 `mapstructure:"outbox"`
	Reconcile       Reconcile              `mapstructure:"reconcile"`
}

type API struct {
	Port string `mapstructure:"port"`
}

// Rewards holds the first-recharge reward table. It is resolved once at
// startup and passed to services as a value, never read from shared state.
// Keys stay strings here because yml map keys arrive as strings.
type Rewards struct {
	FirstRecharge map[string]int64 `mapstructure:"first_recharge"`
}

// FirstRechargeTiers returns the configured tier table, falling back to the
// platform defaults (recharge amount -> bonus coins). Keys that do not parse
// as whole Som amounts are skipped.
func (r Rewards) FirstRechargeTiers() map[int64]int64 {
	if len(r.FirstRecharge) == 0 {
		return map[int64]int64{10: 2, 20: 5, 50: 15, 100: 35}
	}

	tiers := make(map[int64]int64, len(r.FirstRecharge))
	for amount, reward := range r.FirstRecharge {
		tier, err := strconv.ParseInt(amount, 10, 64)
		if err != nil {
			continue
		}
		tiers[tier] = reward
	}

	return tiers
}

type Outbox struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

type Reconcile struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
