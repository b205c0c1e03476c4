/*
Package config holds the configuration of a mathsym engine.

Configuration is read from an optional TOML file:

    # mathsym.toml
    tokenizer = "rules.txt"     # tokenizer rules, empty for the default
    grammar   = "grammar.txt"   # LL(1) grammar, empty for the default
    semantics = "semantics.txt" # semantic annotations, empty for the default
    variable  = "x"
    strict    = false           # reject grammars which are not LL(1)
    trace     = "Error"
    prompt    = ">> "
    workers   = 4               # concurrency of batch evaluation

Default tokenizer rules, grammar and semantics are embedded into the binary.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathsym.config'.
func tracer() tracing.Trace {
	return tracing.Select("mathsym.config")
}

//go:embed defaults/*.txt
var defaults embed.FS

// Config is the configuration of an engine.
type Config struct {
	Tokenizer string `toml:"tokenizer"`
	Grammar   string `toml:"grammar"`
	Semantics string `toml:"semantics"`
	Variable  string `toml:"variable"`
	Strict    bool   `toml:"strict"`
	Trace     string `toml:"trace"`
	Prompt    string `toml:"prompt"`
	Workers   int    `toml:"workers"`
}

// Default returns the default configuration, using the embedded files.
func Default() *Config {
	return &Config{
		Variable: "x",
		Trace:    "Error",
		Prompt:   ">> ",
		Workers:  runtime.NumCPU(),
	}
}

// Load reads a TOML configuration file. Keys missing from the file keep their
// default values, unknown keys are an error.
//
// Errors are of type *mathsym.ConfigError.
func Load(path string) (*Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, &mathsym.ConfigError{File: path, Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &mathsym.ConfigError{File: path,
			Err: fmt.Errorf("unknown configuration keys: %s", strings.Join(keys, ", "))}
	}
	if err := conf.Validate(); err != nil {
		return nil, &mathsym.ConfigError{File: path, Err: err}
	}
	tracer().Infof("configuration loaded from %s", path)
	return conf, nil
}

// Validate checks the configuration values.
func (conf *Config) Validate() error {
	if conf.Variable == "" {
		return errors.New("variable name must not be empty")
	}
	if conf.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, is %d", conf.Workers)
	}
	return nil
}

// Names of the embedded default files.
const (
	DefaultTokenizer = "tokenizer.txt"
	DefaultGrammar   = "grammar.txt"
	DefaultSemantics = "semantics.txt"
)

// OpenDefault opens one of the embedded default files. It returns a name for
// error messages and a reader, which the caller has to close. Configured file
// paths are read with the readers of the respective packages, e.g.
// ll1.ReadGrammarFile.
func OpenDefault(file string) (string, io.ReadCloser, error) {
	f, err := defaults.Open("defaults/" + file)
	if err != nil {
		return file, nil, &mathsym.ConfigError{File: file, Err: err}
	}
	return "(embedded) " + file, f, nil
}
