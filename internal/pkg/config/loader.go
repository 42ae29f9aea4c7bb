// Package config loads validated settings from the environment. A bad value
// never stops a process: the default is used and a warning is returned so
// the caller can log it and record a fallback metric.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadResult is a loaded value plus the warning produced when the
// environment value was rejected.
type LoadResult[T any] struct {
	Value           T
	Warning         string
	FallbackApplied bool
}

// LoadEnv reads envKey, parses it and validates it. Unset keys yield def
// silently; unparsable or invalid values yield def with a warning.
// validate may be nil.
func LoadEnv[T any](envKey string, def T, parse func(string) (T, error), validate func(T) error) LoadResult[T] {
	raw := os.Getenv(envKey)
	if raw == "" {
		return LoadResult[T]{Value: def}
	}

	v, err := parse(raw)
	if err == nil && validate != nil {
		err = validate(v)
	}
	if err != nil {
		return LoadResult[T]{
			Value:           def,
			Warning:         fmt.Sprintf("Invalid %s='%s': %v, falling back to default '%v'", envKey, raw, err, def),
			FallbackApplied: true,
		}
	}
	return LoadResult[T]{Value: v}
}

// LoadEnvString loads a string; validate may be nil.
func LoadEnvString(envKey, def string, validate func(string) error) LoadResult[string] {
	return LoadEnv(envKey, def, func(s string) (string, error) { return s, nil }, validate)
}

func LoadEnvInt(envKey string, def int, validate func(int) error) LoadResult[int] {
	return LoadEnv(envKey, def, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer format")
		}
		return n, nil
	}, validate)
}

func LoadEnvDuration(envKey string, def time.Duration, validate func(time.Duration) error) LoadResult[time.Duration] {
	return LoadEnv(envKey, def, time.ParseDuration, validate)
}

func LoadEnvBool(envKey string, def bool) LoadResult[bool] {
	return LoadEnv(envKey, def, strconv.ParseBool, nil)
}
