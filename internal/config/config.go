// Package config loads rangebench settings from the environment and an optional .env file.
package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"rangekit/internal/logger"
)

// Bench controls the size and repetition of benchmark runs.
type Bench struct {
	// Copies is how many times the sample block is repeated in the corpus.
	Copies int `mapstructure:"copies" default:"500000"`
	// Runs is how many timed runs each version gets.
	Runs int `mapstructure:"runs" default:"7"`
}

type Config struct {
	Bench Bench         `mapstructure:"bench"`
	Log   logger.Config `mapstructure:"log"`
}

// LoadConfig reads path/.env if present, then the environment.
// Nested keys map to upper-case underscore names, e.g. bench.copies is BENCH_COPIES.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues registers every mapstructure key with its default tag so
// AutomaticEnv can find it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
