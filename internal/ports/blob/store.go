package blob

import (
	"context"
	"errors"
)

// Driver identifica el backend concreto.
type Driver string

const (
	DriverFile     Driver = "fs"
	DriverMemory   Driver = "memory"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverS3       Driver = "s3"
	DriverBolt     Driver = "bolt"
)

// ErrNotExist se devuelve cuando la key no tiene documento guardado.
var ErrNotExist = errors.New("blob: not exist")

// Store es un key-value de documentos completos.
// Put reemplaza el documento entero: un lector ve la versión anterior o la nueva, nunca una mezcla.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Driver() Driver
	Close() error
}
