package main

import (
	"github.com/techytabbyy/Spam-Classifier/model"
	"github.com/techytabbyy/Spam-Classifier/model/diskstore"
	"github.com/techytabbyy/Spam-Classifier/model/redisstore"
	"gopkg.in/redis.v5"
)

const redisStore = "redis"

/*
openStore returns the model store named by the given location: the
redis store configured by the redis settings when it is "redis" or
a store on the directory at the location otherwise.
*/
func (rcc *rootCmdConfig) openStore(location string) model.Store {
	if location == redisStore {
		addr := rcc.settings.GetString(redisAddrKey)
		rcc.Logf("Using redis model store at %s...", addr)
		rc := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: rcc.settings.GetString(redisPasswordKey),
			DB:       rcc.settings.GetInt(redisDBKey),
		})
		return redisstore.New(rc, rcc.settings.GetString(redisPrefixKey), model.TextCodec)
	}
	rcc.Logf("Using model store on directory %s...", location)
	return diskstore.New(location, uint64(rcc.settings.GetInt64(diskvCacheSizeKey)), model.TextCodec)
}
