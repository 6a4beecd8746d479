package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"zoo-records/internal/ports/blob"
)

// Config de proceso. Todo sale de variables de entorno (ver FromEnv).
type Config struct {
	Addr string

	StoreDriver blob.Driver
	DataDir     string
	DBDSN       string
	SQLitePath  string
	BoltPath    string
	S3          S3

	AnimalsKey   string
	EmployeesKey string

	LogLevel  string
	LogFormat string
	AppName   string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type S3 struct {
	Bucket    string
	Region    string
	Endpoint  string
	Prefix    string
	PathStyle bool
}

// FromEnv lee:
// - PORT (default 8080)
// - STORE_DRIVER=fs|memory|postgres|sqlite|s3|bolt (default fs)
// - DATA_DIR (fs, default "."), DB_DSN (postgres), SQLITE_PATH, BOLT_PATH
// - S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_PREFIX, S3_PATH_STYLE
// - ANIMALS_KEY (default animals.json), EMPLOYEES_KEY (default staffs.json)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
// - READ_TIMEOUT, WRITE_TIMEOUT, SHUTDOWN_TIMEOUT (duraciones Go, p.ej. "5s")
func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup permite inyectar el entorno (tests).
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Addr:         ":" + get("PORT", "8080"),
		StoreDriver:  blob.Driver(strings.ToLower(get("STORE_DRIVER", string(blob.DriverFile)))),
		DataDir:      get("DATA_DIR", "."),
		DBDSN:        get("DB_DSN", ""),
		SQLitePath:   get("SQLITE_PATH", "zoo.db"),
		BoltPath:     get("BOLT_PATH", "zoo.bolt"),
		AnimalsKey:   get("ANIMALS_KEY", "animals.json"),
		EmployeesKey: get("EMPLOYEES_KEY", "staffs.json"),
		LogLevel:     get("LOG_LEVEL", "info"),
		LogFormat:    get("LOG_FORMAT", "text"),
		AppName:      get("APP_NAME", "zoo-records"),
		S3: S3{
			Bucket:   get("S3_BUCKET", ""),
			Region:   get("S3_REGION", "us-east-1"),
			Endpoint: get("S3_ENDPOINT", ""),
			Prefix:   get("S3_PREFIX", ""),
		},
	}

	var err error
	if cfg.S3.PathStyle, err = parseBool("S3_PATH_STYLE", get("S3_PATH_STYLE", "false")); err != nil {
		return Config{}, err
	}
	if cfg.ReadTimeout, err = parseDuration("READ_TIMEOUT", get("READ_TIMEOUT", "5s")); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = parseDuration("WRITE_TIMEOUT", get("WRITE_TIMEOUT", "10s")); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", get("SHUTDOWN_TIMEOUT", "5s")); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	// "animals.json" y "./animals.json" son el mismo documento
	if path.Clean(c.AnimalsKey) == path.Clean(c.EmployeesKey) {
		return errors.New("config: ANIMALS_KEY and EMPLOYEES_KEY must differ")
	}
	switch c.StoreDriver {
	case blob.DriverFile, blob.DriverMemory, blob.DriverSQLite, blob.DriverBolt:
		return nil
	case blob.DriverPostgres:
		if c.DBDSN == "" {
			return errors.New("config: DB_DSN required for postgres driver")
		}
		return nil
	case blob.DriverS3:
		if c.S3.Bucket == "" {
			return errors.New("config: S3_BUCKET required for s3 driver")
		}
		return nil
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
}

func parseDuration(name, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive duration, got %q", name, v)
	}
	return d, nil
}

func parseBool(name, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s must be true|false, got %q", name, v)
	}
	return b, nil
}
