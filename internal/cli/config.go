package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/classtower/pkg/errors"
)

// configFileName is looked up in the working directory when --config is
// not given.
const configFileName = ".classtower.toml"

// Config mirrors .classtower.toml.
//
//	language = "cpp"
//	root     = "src"
//	sources  = ["src"]
//	includes = ["third_party/include"]
//
//	[output]
//	uml        = "docs/uml.svg"
//	graph      = "docs/graph.svg"
//	edge_label = "inherits"
type Config struct {
	Language string       `toml:"language"`
	Root     string       `toml:"root"`
	Sources  []string     `toml:"sources"`
	Includes []string     `toml:"includes"`
	Output   OutputConfig `toml:"output"`
}

// OutputConfig is the [output] table.
type OutputConfig struct {
	UML       string `toml:"uml"`
	Graph     string `toml:"graph"`
	EdgeLabel string `toml:"edge_label"`
}

// loadConfig reads path, or configFileName if path is empty. Only an
// explicitly named file must exist. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		path = configFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
