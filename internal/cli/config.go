package cli

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/faultline/pkg/resource"
	"github.com/ib-77/faultline/pkg/resource/kv"
	"github.com/ib-77/faultline/pkg/rop"
	"github.com/ib-77/faultline/pkg/rop/kind"
)

// Config is the optional YAML file read at startup. Flags override it.
type Config struct {
	PanicMode string   `yaml:"panic_mode"`
	Debug     bool     `yaml:"debug"`
	KV        KVConfig `yaml:"kv"`
}

type KVConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	ReadOnly bool          `yaml:"read_only"`
}

func defaultConfig() Config {
	return Config{
		PanicMode: "unwind",
		KV:        KVConfig{Timeout: kv.DefaultTimeout},
	}
}

func (c Config) storeOptions() kv.Options {
	return kv.Options{Timeout: c.KV.Timeout, ReadOnly: c.KV.ReadOnly}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(files *resource.Files, path string) rop.Result[Config, *kind.Error] {
	cfg := defaultConfig()
	if path == "" {
		return rop.Success[Config, *kind.Error](cfg)
	}

	return rop.Do(func(f *rop.Frame[*kind.Error]) rop.Result[Config, *kind.Error] {
		data := rop.Try(f, files.ReadString(path))
		if err := yaml.Unmarshal([]byte(data), &cfg); err != nil {
			f.Fail(kind.New(kind.InvalidData, "parse config", path, err))
		}
		return rop.Success[Config, *kind.Error](cfg)
	})
}
