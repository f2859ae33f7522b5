/*
Package redisstore provides a model.Store backed by a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	classifier "github.com/techytabbyy/Spam-Classifier"
	"github.com/techytabbyy/Spam-Classifier/model"
	"gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
	codec  model.Codec
}

//New builds a model.Store backed by a redis DB
//that keeps every model under the key <prefix>:<name>
func New(rc *redis.Client, prefix string, codec model.Codec) model.Store {
	return &redisStore{rc, prefix, codec}
}

func (rs *redisStore) Put(ctx context.Context, name string, c *classifier.Classifier) error {
	redisID := rs.keyFor(name)
	data, err := rs.codec.Encode(c)
	if err != nil {
		return errors.Wrapf(err, "storing model %q: encoding model", redisID)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	_, err = rs.rc.Set(redisID, data, 0).Result()
	if err != nil {
		return errors.Wrapf(err, "storing model %q in redis", redisID)
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, name string) (*classifier.Classifier, error) {
	redisID := rs.keyFor(name)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(redisID).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving model %q", redisID)
	}
	c, err := rs.codec.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving model %q: decoding", redisID)
	}
	return c, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	redisID := rs.keyFor(name)
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return errors.Wrapf(err, "deleting model %q from redis", redisID)
	}
	if n == 0 {
		return ErrNotFound(name)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}

// ErrNotFound returns an error for the model with the given name
// whose cause is model.ErrModelNotFound
func ErrNotFound(name string) error {
	return errors.Wrapf(model.ErrModelNotFound, "model %q", name)
}
