package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix only considers variables starting with prefix, e.g. "QANDA_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given files instead of the default .env.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

var loadedFiles sync.Map

// Load parses environment variables into v.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	files := o.envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	loadEnvFiles(files...)

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the application cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// loadEnvFiles loads each file once per process. Missing files are ignored.
func loadEnvFiles(files ...string) {
	for _, f := range files {
		if _, done := loadedFiles.LoadOrStore(f, struct{}{}); done {
			continue
		}
		_ = godotenv.Load(f)
	}
}
