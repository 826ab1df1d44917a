package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	errNoCommand   = errors.New("no command given")
	errNoPaths     = errors.New("no paths to watch")
	errNegDelay    = errors.New("delay must not be negative")
	errEmptyFilter = errors.New("empty extension in filter")
)

// Config configures what debounce-watch watches and runs.
type Config struct {
	// Paths are the files and directories to watch. Directories are not
	// watched recursively.
	Paths []string `yaml:"paths"`

	// Delay is the quiet period after the last event before Command runs.
	Delay time.Duration `yaml:"delay"`

	// Extensions limits events to files with one of these extensions, e.g.
	// ".go". All files match when empty.
	Extensions []string `yaml:"extensions"`

	// Command is run once per burst of events. The path of the last event is
	// in the DEBOUNCE_PATH environment variable.
	Command []string `yaml:"command"`
}

// DefaultConfig returns the config used for anything not set by a file or flag.
func DefaultConfig() Config {
	return Config{
		Paths: []string{"."},
		Delay: 300 * time.Millisecond,
	}
}

// ParseConfigFile reads the YAML file at path over DefaultConfig.
func ParseConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate returns an error if the config cannot be used to run a watcher.
func (c Config) Validate() error {
	if len(c.Command) == 0 {
		return errNoCommand
	}
	if len(c.Paths) == 0 {
		return errNoPaths
	}
	if c.Delay < 0 {
		return errNegDelay
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext == "." {
			return errEmptyFilter
		}
	}

	return nil
}

// parseArgs builds the config from an optional config file, with any flags
// given on the command line taking precedence over the file.
func parseArgs(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("debounce-watch", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output,
			"Usage: debounce-watch [flags] [--] command [args...]\n\n",
		)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "path to YAML config file")
	paths := fs.String("paths", "", "comma separated paths to watch")
	delay := fs.Duration("delay", 0, "quiet period before running command")
	exts := fs.String("ext", "", "comma separated file extensions to watch")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = ParseConfigFile(*configPath); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "paths":
			cfg.Paths = splitList(*paths)
		case "delay":
			cfg.Delay = *delay
		case "ext":
			cfg.Extensions = splitList(*exts)
		}
	})

	if fs.NArg() > 0 {
		cfg.Command = fs.Args()
	}

	cfg.Extensions = normalizeExtensions(cfg.Extensions)

	return cfg, cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

// normalizeExtensions makes sure every extension starts with a dot, so "go"
// and ".go" both match main.go.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}

	return out
}
