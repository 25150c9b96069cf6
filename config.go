package boolidx

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ═══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════
// Loads the two configuration properties spec.md §6 names — the stemmer
// selection and the dictionary data-structure choice — from an optional YAML
// file. A missing or malformed file is ErrConfigError, recovered with the
// engine's defaults and logged at slog.Error (§7).
// ═══════════════════════════════════════════════════════════════════════════════

// DataStructureKind selects the dictionary's underlying data structure
// (§6 index.dataStructure.type). The engine only implements Hash today;
// other values round-trip through config but fall back to Hash.
type DataStructureKind string

const (
	HashDataStructure DataStructureKind = "HASH"
)

// appSection mirrors the YAML "app" key.
type appSection struct {
	Stemmer string `yaml:"stemmer"`
}

// indexDataStructureSection mirrors the YAML "index.dataStructure" key.
type indexDataStructureSection struct {
	Type string `yaml:"type"`
}

type indexSection struct {
	DataStructure indexDataStructureSection `yaml:"dataStructure"`
}

// rawConfig is the on-disk YAML shape.
type rawConfig struct {
	App   appSection   `yaml:"app"`
	Index indexSection `yaml:"index"`
}

// Config is the resolved, typed configuration the engine runs with.
type Config struct {
	Stemmer       StemmerKind
	DataStructure DataStructureKind
}

// DefaultConfig is the fallback used whenever no file is given, or the given
// file fails to load: no stemming, hash-backed dictionary.
func DefaultConfig() Config {
	return Config{Stemmer: NoStemming, DataStructure: HashDataStructure}
}

// LoadConfig reads and parses a YAML configuration file at path. A missing
// file, unreadable file, or malformed YAML all yield ErrConfigError wrapped
// with the underlying cause; the caller gets DefaultConfig back alongside
// the error so it can keep running degraded, matching the recovery posture
// the rest of the engine uses for non-fatal failures (§7).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("config load failed, falling back to defaults", "path", path, "error", err)
		return DefaultConfig(), wrapConfigError(err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		slog.Error("config parse failed, falling back to defaults", "path", path, "error", err)
		return DefaultConfig(), wrapConfigError(err)
	}

	cfg := DefaultConfig()
	if raw.App.Stemmer != "" {
		cfg.Stemmer = StemmerKind(raw.App.Stemmer)
	}
	if raw.Index.DataStructure.Type != "" {
		cfg.DataStructure = DataStructureKind(raw.Index.DataStructure.Type)
	}
	return cfg, nil
}

func wrapConfigError(cause error) error {
	return &configError{cause: cause}
}

type configError struct {
	cause error
}

func (e *configError) Error() string {
	return ErrConfigError.Error() + ": " + e.cause.Error()
}

func (e *configError) Unwrap() error {
	return ErrConfigError
}
