package model

import (
	"context"
	"sync"

	classifier "github.com/techytabbyy/Spam-Classifier"
)

type memoryStore struct {
	models map[string][]byte
	codec  Codec
	lock   *sync.RWMutex
}

// NewMemoryStore returns an implementation
// of Store with the process memory space
// as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{
		models: make(map[string][]byte),
		codec:  TextCodec,
		lock:   &sync.RWMutex{},
	}
}

func (ms *memoryStore) Put(ctx context.Context, name string, c *classifier.Classifier) error {
	data, err := ms.codec.Encode(c)
	if err != nil {
		return err
	}
	return ms.withLock(ctx, func(ctx context.Context) error {
		ms.models[name] = data
		return nil
	})
}

func (ms *memoryStore) Get(ctx context.Context, name string) (*classifier.Classifier, error) {
	var data []byte
	var ok bool
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		data, ok = ms.models[name]
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrModelNotFound
	}
	return ms.codec.Decode(data)
}

func (ms *memoryStore) Delete(ctx context.Context, name string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		if _, ok := ms.models[name]; !ok {
			return ErrModelNotFound
		}
		delete(ms.models, name)
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
