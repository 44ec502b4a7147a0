package domain

// File names recognized by the configuration loader.
const (
	// ConfigFileName is the per-repository configuration file.
	ConfigFileName = ".tcrtodo.toml"

	// GlobalConfigFileName is the file name inside the global config directory.
	GlobalConfigFileName = "config.toml"

	// DefaultTaskFileName is the authoritative task file.
	DefaultTaskFileName = "tasks.md"
)

// ExportFormat identifies a derived snapshot format.
type ExportFormat string

const (
	ExportMarkdown ExportFormat = "markdown"
	ExportJSON     ExportFormat = "json"
	ExportYAML     ExportFormat = "yaml"
)

// IsValid returns true if the format is a known export format.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportMarkdown, ExportJSON, ExportYAML:
		return true
	default:
		return false
	}
}

// DefaultExportPath returns the conventional output path for the format.
func (f ExportFormat) DefaultExportPath() string {
	switch f {
	case ExportMarkdown:
		return "tasks.export.md"
	case ExportYAML:
		return "tasks.yaml"
	default:
		return "tasks.json"
	}
}

// Config represents the application configuration.
type Config struct {
	TCR    TCRConfig    `toml:"tcr"`    // [tcr] settings
	Export ExportConfig `toml:"export"` // [export] settings
	Log    LogConfig    `toml:"log"`    // [log] settings
}

// TCRConfig holds Test-Commit-Revert settings from the [tcr] section.
type TCRConfig struct {
	Command       string `toml:"command"`        // Test command run by the TCR trigger
	CommitMessage string `toml:"commit_message"` // Fallback commit message when no task is selected
}

// ExportConfig holds export snapshot settings from the [export] section.
type ExportConfig struct {
	Format string `toml:"format"` // markdown, json, or yaml
	Path   string `toml:"path"`   // Output path (empty = format default)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		TCR: TCRConfig{
			Command:       "go test ./...",
			CommitMessage: "TCR: tasks updated",
		},
		Export: ExportConfig{
			Format: string(ExportJSON),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ExportFormat returns the configured export format, falling back to JSON
// for unknown values.
func (c *Config) ExportFormat() ExportFormat {
	f := ExportFormat(c.Export.Format)
	if !f.IsValid() {
		return ExportJSON
	}
	return f
}

// ExportPath returns the configured export path or the format default.
func (c *Config) ExportPath() string {
	if c.Export.Path != "" {
		return c.Export.Path
	}
	return c.ExportFormat().DefaultExportPath()
}
