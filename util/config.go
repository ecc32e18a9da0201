package util

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	MigrationURL        string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress        string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RenderCacheTTL      time.Duration `mapstructure:"RENDER_CACHE_TTL"`
	SeedProfilesPath    string        `mapstructure:"SEED_PROFILES_PATH"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// If no port is specified in the URL, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress

	urlStr, parseErr := url.Parse(addr)
	if parseErr == nil && urlStr.Host != "" {
		host, port, err = net.SplitHostPort(urlStr.Host)
		if err != nil {
			// If there's no port, SplitHostPort returns an error,
			// in which case the host itself is the hostname.
			host, port, err = urlStr.Host, "", nil
		}
	} else {
		// no scheme: the address itself should be host[:port]
		host, port, err = net.SplitHostPort(addr)
		if err != nil {
			return "", "", fmt.Errorf("error parsing http server address %q: %w", addr, err)
		}
	}

	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")

	if host == "" {
		return "", "", fmt.Errorf("no host in http server address %q", addr)
	}

	return host, port, nil
}
