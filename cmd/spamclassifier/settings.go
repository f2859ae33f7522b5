package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	redisAddrKey      = "redis.addr"
	redisPasswordKey  = "redis.password"
	redisDBKey        = "redis.db"
	redisPrefixKey    = "redis.prefix"
	diskvCacheSizeKey = "diskv.cache_size"
)

func loadSettings(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("spamclassifier")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(redisAddrKey, "localhost:6379")
	v.SetDefault(redisPasswordKey, "")
	v.SetDefault(redisDBKey, 0)
	v.SetDefault(redisPrefixKey, "spamclassifier")
	v.SetDefault(diskvCacheSizeKey, 1024*1024)
	if configFile != "" {
		v.SetConfigFile(configFile)
		err := v.ReadInConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configFile)
		}
	}
	return v, nil
}
