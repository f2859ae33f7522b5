/*
Package diskstore provides a model.Store that keeps every model in a
file of a directory, using diskv.
*/
package diskstore

import (
	"context"
	"os"
	"strings"

	"github.com/peterbourgon/diskv"
	"github.com/pkg/errors"
	classifier "github.com/techytabbyy/Spam-Classifier"
	"github.com/techytabbyy/Spam-Classifier/model"
)

// DefaultCacheSize is the number of bytes of models kept in memory
// by a store created with a non-positive cache size
const DefaultCacheSize = 1024 * 1024

type diskStore struct {
	d     *diskv.Diskv
	codec model.Codec
}

/*
New takes the path of a directory, the maximum number of bytes of
models to keep cached in memory and a model.Codec and returns a
model.Store that keeps models in files of the directory named after
the models.
*/
func New(dir string, cacheSize uint64, codec model.Codec) model.Store {
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	d := diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: cacheSize,
	})
	return &diskStore{d, codec}
}

func (ds *diskStore) Put(ctx context.Context, name string, c *classifier.Classifier) error {
	if err := validName(name); err != nil {
		return err
	}
	data, err := ds.codec.Encode(c)
	if err != nil {
		return errors.Wrapf(err, "storing model %q: encoding model", name)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	return errors.Wrapf(ds.d.Write(name, data), "storing model %q", name)
}

func (ds *diskStore) Get(ctx context.Context, name string) (*classifier.Classifier, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := ds.d.Read(name)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(model.ErrModelNotFound, "model %q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving model %q", name)
	}
	c, err := ds.codec.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving model %q: decoding", name)
	}
	return c, nil
}

func (ds *diskStore) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ds.d.Has(name) {
		return errors.Wrapf(model.ErrModelNotFound, "model %q", name)
	}
	return errors.Wrapf(ds.d.Erase(name), "deleting model %q", name)
}

func (ds *diskStore) Close(ctx context.Context) error {
	return nil
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Errorf("invalid model name %q", name)
	}
	return nil
}
