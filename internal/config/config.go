package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Upload UploadConfig `toml:"upload"`
	Report ReportConfig `toml:"report"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// UploadConfig holds temporary upload storage settings.
type UploadConfig struct {
	Dir               string   `toml:"dir"`
	MaxFileMB         int64    `toml:"max_file_mb"`
	AllowedExtensions []string `toml:"allowed_extensions"`
}

// ReportConfig holds reconciliation settings.
type ReportConfig struct {
	// HeaderScanLimit caps how many leading rows are scanned for the
	// header row of each export.
	HeaderScanLimit int `toml:"header_scan_limit"`
	// AllowPositional enables the degraded positional column fallback
	// when no header row is found.
	AllowPositional bool `toml:"allow_positional"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8080,
			DevMode: false,
		},
		Upload: UploadConfig{
			Dir:               "uploads",
			MaxFileMB:         16,
			AllowedExtensions: []string{".xlsx", ".xls"},
		},
		Report: ReportConfig{
			HeaderScanLimit: 20,
			AllowPositional: false,
		},
	}
}

// MaxFileBytes returns the per-file upload ceiling in bytes.
func (c *UploadConfig) MaxFileBytes() int64 {
	return c.MaxFileMB * 1024 * 1024
}

// ExtensionAllowed reports whether the (lower-cased) extension is accepted.
func (c *UploadConfig) ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range c.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable's directory, falling back
// to defaults when absent. Environment variables override afterwards:
// EXEL_ANALYZER_PORT, EXEL_ANALYZER_UPLOAD_DIR.
func LoadConfig() (*AppConfig, error) {
	cfg := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// no file, defaults apply
	default:
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("EXEL_ANALYZER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("EXEL_ANALYZER_UPLOAD_DIR"); v != "" {
		cfg.Upload.Dir = v
	}
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(cfg *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureUploadDir creates the upload directory next to the executable
// (absolute paths are used as-is) and returns its path.
func EnsureUploadDir(cfg *AppConfig) (string, error) {
	dir := cfg.Upload.Dir
	if !filepath.IsAbs(dir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dir = filepath.Join(exeDir, dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
