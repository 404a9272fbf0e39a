package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppEnv       string
	DotEnvLoaded bool

	// Content layout, relative to SiteRoot
	SiteRoot     string
	ContentDir   string
	ContentFile  string
	ReservedDirs []string

	// Outputs, relative to SiteRoot
	MetadataPath string
	RSSPath      string
	SitemapPath  string
	ShortLinkDir string

	// Site
	SiteURL         string
	SiteTitle       string
	SiteDescription string
	SiteLanguage    string

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible, only needed by publish)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services (MinIO, R2, etc.)
	S3Prefix    string
	S3Timeout   time.Duration
}

// ConfigError reports a setting that is missing or unusable.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

func Load() *Config {
	// Load .env file if it exists
	dotEnvLoaded := godotenv.Load() == nil

	return &Config{
		AppEnv:       envString("APP_ENV", "development"),
		DotEnvLoaded: dotEnvLoaded,

		SiteRoot:     envString("SITE_ROOT", "."),
		ContentDir:   envString("CONTENT_DIR", "content"),
		ContentFile:  envString("CONTENT_FILE", "content.md"),
		ReservedDirs: envList("RESERVED_DIRS", []string{"posts", "l3a"}),

		MetadataPath: envString("METADATA_PATH", "posts/metadata.json"),
		RSSPath:      envString("RSS_PATH", "rss.xml"),
		SitemapPath:  envString("SITEMAP_PATH", "sitemap.xml"),
		ShortLinkDir: envString("SHORT_LINK_DIR", "l3a"),

		SiteURL:         envString("SITE_URL", "https://a.llama.codes"),
		SiteTitle:       envString("SITE_TITLE", "a llama codes"),
		SiteDescription: envString("SITE_DESCRIPTION", "Software blog of afuzzyllama"),
		SiteLanguage:    envString("SITE_LANGUAGE", "en"),

		SentryDSN: envString("SENTRY_DSN", ""),

		S3Region:    envString("S3_REGION", ""),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
		S3Prefix:    envString("S3_PREFIX", ""),
		S3Timeout:   envDuration("S3_TIMEOUT", 30*time.Second),
	}
}

// Validate checks the settings every build needs.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ContentDir) == "" {
		return &ConfigError{Key: "CONTENT_DIR", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.ContentFile) == "" {
		return &ConfigError{Key: "CONTENT_FILE", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.SiteURL) == "" {
		return &ConfigError{Key: "SITE_URL", Reason: "must not be empty"}
	}
	for key, p := range map[string]string{
		"METADATA_PATH":  c.MetadataPath,
		"RSS_PATH":       c.RSSPath,
		"SITEMAP_PATH":   c.SitemapPath,
		"SHORT_LINK_DIR": c.ShortLinkDir,
	} {
		if strings.TrimSpace(p) == "" {
			return &ConfigError{Key: key, Reason: "must not be empty"}
		}
		if filepath.IsAbs(p) {
			return &ConfigError{Key: key, Reason: "must be relative to SITE_ROOT"}
		}
	}
	return nil
}

// ValidatePublish checks the settings the publish command needs on top of Validate.
func (c *Config) ValidatePublish() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.S3Bucket == "" {
		return &ConfigError{Key: "S3_BUCKET", Reason: "required for publish"}
	}
	if c.S3Region == "" {
		return &ConfigError{Key: "S3_REGION", Reason: "required for publish"}
	}
	return nil
}

// ContentPath is the directory scanned for content folders.
func (c *Config) ContentPath() string {
	return filepath.Join(c.SiteRoot, c.ContentDir)
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envList(key string, def []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
