// Package storage содержит хранилища ключ-значение, в которых сохраняется набор геозон
package storage

import (
	"context"
	"errors"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

// ErrKeyNotFound - ключ отсутствует в хранилище
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore - строковое хранилище ключ-значение
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
