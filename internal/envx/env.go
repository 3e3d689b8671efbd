// Package envx overlays configuration from the process environment, optionally
// seeded from dotenv files.
package envx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotenv loads the given dotenv files into the environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotenv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Source reads variables that share a common prefix, e.g. FIELDSYNC_.
type Source struct {
	Prefix string
	err    error
}

// String sets *dst when <prefix><key> is set.
func (s *Source) String(key string, dst *string) {
	if v, ok := os.LookupEnv(s.Prefix + key); ok {
		*dst = v
	}
}

// Duration sets *dst from a Go duration string such as "5s".
func (s *Source) Duration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(s.Prefix + key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		s.fail(key, err)
		return
	}
	*dst = d
}

// Bool sets *dst from strconv.ParseBool syntax.
func (s *Source) Bool(key string, dst *bool) {
	v, ok := os.LookupEnv(s.Prefix + key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		s.fail(key, err)
		return
	}
	*dst = b
}

// Err returns the first parse error seen, if any.
func (s *Source) Err() error { return s.err }

func (s *Source) fail(key string, err error) {
	if s.err == nil {
		s.err = fmt.Errorf("env %s%s: %w", s.Prefix, key, err)
	}
}
