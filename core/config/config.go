package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse is returned when environment variables cannot be parsed into the config struct.
var ErrParse = errors.New("config: failed to parse environment")

var (
	dotenvOnce sync.Once

	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)
)

// Load fills cfg from the environment. The first call for a type parses the
// environment; later calls for the same type copy the cached value.
// A .env file in the working directory is loaded once, without overriding
// variables already set.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	cache[key] = parsed
	*cfg = parsed
	return nil
}

// MustLoad is like Load but panics on error. Intended for program startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
