package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shcv/keyfile"
)

// Config holds the defaults read from the environment. Flags win over it.
type Config struct {
	Locale       string `env:"KEYFILE_LOCALE"`
	Separator    string `env:"KEYFILE_SEPARATOR" envDefault:";"`
	KeepComments bool   `env:"KEYFILE_KEEP_COMMENTS" envDefault:"true"`
	Verbosity    int    `env:"KEYFILE_VERBOSITY" envDefault:"0"`

	LCAll      string `env:"LC_ALL"`
	LCMessages string `env:"LC_MESSAGES"`
	Lang       string `env:"LANG"`
}

// loadConfig reads the environment, after loading a .env file from the
// working directory when there is one. Variables already set win.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// EffectiveLocale picks the first locale setting that names a language.
// The C and POSIX locales mean "untranslated".
func (c Config) EffectiveLocale() string {
	for _, v := range []string{c.Locale, c.LCAll, c.LCMessages, c.Lang} {
		switch v {
		case "", "C", "POSIX", "C.UTF-8":
			continue
		}
		return v
	}
	return ""
}

// options are the resolved global settings shared by all subcommands.
type options struct {
	verbosity    int
	locale       string
	separator    string
	keepComments bool
}

func (o *options) resolve(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("verbose") {
		o.verbosity = cfg.Verbosity
	}
	if !flags.Changed("locale") {
		o.locale = cfg.EffectiveLocale()
	}
	if !flags.Changed("separator") {
		o.separator = cfg.Separator
	}
	if !flags.Changed("comments") {
		o.keepComments = cfg.KeepComments
	}
	return nil
}

func (o *options) parseOptions(extra ...keyfile.ParseOption) []keyfile.ParseOption {
	opts := []keyfile.ParseOption{keyfile.WithListSeparator(o.separator)}
	if !o.keepComments {
		opts = append(opts, keyfile.WithoutComments())
	}
	return append(opts, extra...)
}

// lookupLocale turns the configured locale into a lookup argument.
func (o *options) lookupLocale() (keyfile.LocaleSpec, error) {
	if o.locale == "" {
		return keyfile.NoLocale, nil
	}
	l, err := keyfile.ParseLocale(o.locale)
	if err != nil {
		return keyfile.NoLocale, err
	}
	return keyfile.ForLocale(l), nil
}

// translationFilter maps the --translations flag to a parse filter.
func translationFilter(value string) (keyfile.LocaleSpec, error) {
	switch value {
	case "", "all":
		return keyfile.NoLocale, nil
	case "none":
		return keyfile.SuppressLocales, nil
	}
	l, err := keyfile.ParseLocale(value)
	if err != nil {
		return keyfile.NoLocale, err
	}
	return keyfile.ForLocale(l), nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func (o *options) load(cmd *cobra.Command, path string, extra ...keyfile.ParseOption) (*keyfile.Document, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	doc, err := keyfile.Parse(data, o.parseOptions(extra...)...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debugf("loaded %s: %d groups", path, len(doc.Groups()))
	return doc, nil
}
