// Package env resolves configuration from the process environment, falling
// back to values read from a .env file.
package env

import (
	"io/fs"
	"maps"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/amirrezaask/sumtype/errors"
)

var dotEnvMap = errors.Must(read(".env"))

// Load replaces the values previously read from .env with the contents of
// filenames. Later files win. Missing files are skipped.
func Load(filenames ...string) error {
	m, err := read(filenames...)
	if err != nil {
		return err
	}
	dotEnvMap = m
	return nil
}

func read(filenames ...string) (map[string]string, error) {
	values := map[string]string{}
	for _, name := range filenames {
		m, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading %s", name)
		}
		maps.Copy(values, m)
	}
	return values, nil
}

// Lookup returns the value of key and whether it is set to something
// non-empty. A non-empty process variable shadows the .env entry.
func Lookup(key string) (string, bool) {
	if v := os.Getenv(key); v != "" {
		return v, true
	}
	v := dotEnvMap[key]
	return v, v != ""
}

func GetEnvDefault(key, def string) string {
	if v, ok := Lookup(key); ok {
		return v
	}
	return def
}

// GetEnvBool parses key with strconv.ParseBool, returning def when unset.
func GetEnvBool(key string, def bool) (bool, error) {
	v, ok := Lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, errors.Wrap(err, "parsing %s", key)
	}
	return b, nil
}
