// Package config loads configuration structs from environment variables.
//
// Variable names follow the pattern:
//
//	{Prefix}_{STAGE}_{FIELD}
//
// Named nested structs add their field name as a path segment, embedded
// structs are flattened. Go field names are converted from CamelCase to
// UPPER_SNAKE_CASE:
//
//	Name           → NAME
//	DisableLogging → DISABLE_LOGGING
//	HTTPClient     → HTTP_CLIENT
//
// Supported field types: string, bool, int*, uint*, float*, time.Duration.
// Fields of other types are skipped.
//
// Example with medium.Config and stage "demo":
//
//	MEDIUM_DEMO_NAME=numbers
//	MEDIUM_DEMO_RECOVER=true
//	MEDIUM_DEMO_DISABLE_LOGGING=false
//
// Variables may also come from dotenv files listed in [Loader.Files].
// The process environment always takes precedence over file values.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Loader reads environment variables into configuration structs.
type Loader struct {
	// Prefix for environment variable names.
	// Default: "MEDIUM".
	Prefix string

	// Files are dotenv files read before the environment is consulted.
	// Missing files are an error.
	Files []string

	// lookup overrides os.LookupEnv for testing.
	lookup func(string) (string, bool)
}

func (l Loader) prefix() string {
	if l.Prefix == "" {
		return "MEDIUM"
	}
	return l.Prefix
}

// source returns the lookup function for one Load call.
func (l Loader) source() (func(string) (string, bool), error) {
	env := l.lookup
	if env == nil {
		env = os.LookupEnv
	}
	if len(l.Files) == 0 {
		return env, nil
	}

	file, err := godotenv.Read(l.Files...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return func(key string) (string, bool) {
		if v, ok := env(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

// Load populates the struct pointed to by dst from environment variables.
// The stage becomes the second segment of each variable name.
//
// Only fields with a set variable are modified, so Load can overlay the
// environment on top of programmatic defaults.
func (l Loader) Load(stage string, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: dst must be a pointer to a struct, got %T", dst)
	}
	lookup, err := l.source()
	if err != nil {
		return err
	}

	return walk(l.key(stage), v.Elem(), func(key string, fv reflect.Value) error {
		raw, ok := lookup(key)
		if !ok {
			return nil
		}
		if err := setField(fv, raw); err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		return nil
	})
}

// Keys returns the variable names that [Loader.Load] would check for dst,
// which may be a struct or a pointer to a struct.
func (l Loader) Keys(stage string, dst any) []string {
	v := reflect.ValueOf(dst)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	// Walk a zero copy so that unaddressable values are fine.
	zero := reflect.New(v.Type()).Elem()

	var keys []string
	_ = walk(l.key(stage), zero, func(key string, _ reflect.Value) error {
		keys = append(keys, key)
		return nil
	})
	return keys
}

func (l Loader) key(stage string) string {
	return l.prefix() + "_" + normalizeStage(stage)
}

// Load populates dst using the default Loader with prefix "MEDIUM".
func Load(stage string, dst any) error {
	return Loader{}.Load(stage, dst)
}

// Keys returns variable names using the default Loader with prefix "MEDIUM".
func Keys(stage string, dst any) []string {
	return Loader{}.Keys(stage, dst)
}

// walk calls visit for every supported leaf field of v with its key.
func walk(prefix string, v reflect.Value, visit func(string, reflect.Value) error) error {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)

		embeddedStruct := field.Anonymous && field.Type.Kind() == reflect.Struct
		if !field.IsExported() && !embeddedStruct {
			continue
		}

		key := prefix
		if !field.Anonymous {
			key += "_" + toUpperSnake(field.Name)
		}

		switch {
		case field.Type == durationType || isSupportedKind(field.Type.Kind()):
			if err := visit(key, fv); err != nil {
				return err
			}
		case field.Type.Kind() == reflect.Struct:
			if err := walk(key, fv, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

func isSupportedKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func setField(v reflect.Value, raw string) error {
	if v.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	}
	return nil
}

// normalizeStage uppercases letters, maps hyphens, spaces and underscores
// to underscores and drops everything else.
func normalizeStage(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(unicode.ToUpper(r))
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// toUpperSnake converts a Go CamelCase field name to UPPER_SNAKE_CASE.
func toUpperSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
