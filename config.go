package clipdata

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultAPIURL         = "https://restcountries.com/v3.1/all?fields=name,cca2,idd,flags"
	DefaultUserAgent      = "Mozilla/5.0"
	DefaultResourcePrefix = "/org/gnome/shell/extensions/all-in-one-clipboard"
	DefaultManifestFile   = "all-in-one-clipboard.gresource.xml"
	DefaultJSONDir        = "assets/data/json"
	DefaultJSONFile       = "countries.json"
	DefaultAssetDir       = "assets/data/svg"
	DefaultDataPattern    = "*.json"
)

// CountryConfig configures the country pipeline. Relative paths resolve against ExtensionRoot.
type CountryConfig struct {
	ExtensionRoot  string        `yaml:"extension_root"`
	APIURL         string        `yaml:"api_url"`
	UserAgent      string        `yaml:"user_agent"`
	JSONDir        string        `yaml:"json_dir"`
	JSONFile       string        `yaml:"json_file"`
	AssetDir       string        `yaml:"asset_dir"`
	ResourcePrefix string        `yaml:"default_prefix"`
	FetchRetries   int           `yaml:"fetch_retries"`
	FetchDelay     time.Duration `yaml:"fetch_retry_delay"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout"`
}

// ManifestConfig configures how the GResource manifest is located and rewritten.
type ManifestConfig struct {
	Path         string `yaml:"path"`
	FileOpen     string `yaml:"file_open"`
	FileClose    string `yaml:"file_close"`
	SectionClose string `yaml:"section_close"`
	Indent       Indent `yaml:"indent"`
}

// ExtractionConfig configures which JSON keys and files take part in string extraction.
type ExtractionConfig struct {
	TranslatableKeys StringList `yaml:"translatable_keys"`
	SkipFiles        StringList `yaml:"skip_files"`
	Pattern          string     `yaml:"pattern"`
}

// Config is the full tool configuration, usually read from clipdata.yaml.
type Config struct {
	Countries  CountryConfig    `yaml:"countries"`
	Manifest   ManifestConfig   `yaml:"manifest"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Template   TemplateHeader   `yaml:"template"`

	NowFn func() time.Time `yaml:"-"`
}

// WithDefaults returns a copy of cfg with every unset field filled in.
func (cfg Config) WithDefaults() Config {
	c := &cfg.Countries
	if c.ExtensionRoot == "" {
		c.ExtensionRoot = "extension"
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.JSONDir == "" {
		c.JSONDir = DefaultJSONDir
	}
	if c.JSONFile == "" {
		c.JSONFile = DefaultJSONFile
	}
	if c.AssetDir == "" {
		c.AssetDir = DefaultAssetDir
	}
	if c.ResourcePrefix == "" {
		c.ResourcePrefix = DefaultResourcePrefix
	}
	if c.FetchRetries < 0 {
		c.FetchRetries = 0
	}
	if c.FetchDelay <= 0 {
		c.FetchDelay = 500 * time.Millisecond
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 30 * time.Second
	}

	m := &cfg.Manifest
	if m.Path == "" {
		m.Path = DefaultManifestFile
	}
	if m.FileOpen == "" {
		m.FileOpen = "<file>"
	}
	if m.FileClose == "" {
		m.FileClose = "</file>"
	}
	if m.SectionClose == "" {
		m.SectionClose = "</gresource>"
	}
	if m.Indent == "" {
		m.Indent = Spaces(4)
	}

	e := &cfg.Extraction
	if len(e.TranslatableKeys) == 0 {
		e.TranslatableKeys = StringList{"name", "description", "keywords"}
	}
	if e.SkipFiles == nil {
		e.SkipFiles = StringList{"countries.json", "emojisModifier.json"}
	}
	if e.Pattern == "" {
		e.Pattern = DefaultDataPattern
	}

	cfg.Template = cfg.Template.withDefaults()
	if cfg.NowFn == nil {
		cfg.NowFn = time.Now
	}
	return cfg
}

// Layout derives the manifest layout. The asset marker is the asset dir relative to the
// extension root, with a trailing slash.
func (cfg Config) Layout() ManifestLayout {
	return ManifestLayout{
		AssetDir:     filepath.ToSlash(filepath.Clean(cfg.Countries.AssetDir)) + "/",
		FileOpen:     cfg.Manifest.FileOpen,
		FileClose:    cfg.Manifest.FileClose,
		SectionClose: cfg.Manifest.SectionClose,
		Indent:       string(cfg.Manifest.Indent),
	}
}

// Policy builds the immutable extraction policy.
func (cfg Config) Policy() ExtractionPolicy {
	return NewExtractionPolicy(cfg.Extraction.TranslatableKeys, cfg.Extraction.SkipFiles)
}

// Resolve joins a configured path onto the extension root unless it is already absolute.
func (c CountryConfig) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ExtensionRoot, path)
}

// LoadConfig reads a YAML config file. The returned Config already has defaults applied.
func LoadConfig(fsys FileSystem, path string) (Config, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config YAML: %w", err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the pipelines cannot honour. The asset dir doubles as the manifest
// marker and the flag_path segment, so it must be relative to the extension root.
func (cfg Config) Validate() error {
	if dir := cfg.Countries.AssetDir; filepath.IsAbs(dir) || strings.HasPrefix(filepath.ToSlash(dir), "/") {
		return newPipelineError(KindUsage, dir, "asset_dir must be relative to extension_root", nil)
	}
	return nil
}
