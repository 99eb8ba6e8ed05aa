package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. APIDOCS_RENDER_LANGUAGE
const EnvPrefix = "APIDOCS"

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Render RenderConfig `mapstructure:"render"`
	Output OutputConfig `mapstructure:"output"`
}

// InputConfig holds where the documentation data model is read from
type InputConfig struct {
	Path     string   `mapstructure:"path" validate:"required"`               // Data file or directory of data files
	Encoding []string `mapstructure:"encoding" validate:"min=1,dive,required"` // Encoding hints (e.g., ["utf-8", "gb18030"])
}

// RenderConfig holds document assembly settings
type RenderConfig struct {
	Title             string `mapstructure:"title"`
	Language          string `mapstructure:"language" validate:"omitempty,oneof=en zh zh-CN zh-Hans"`
	AllowDuplicateIDs bool   `mapstructure:"allow_duplicate_ids"` // Warn instead of failing on colliding anchors
	Highlight         bool   `mapstructure:"highlight"`           // Emit the syntax highlighting task
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir      string   `mapstructure:"dir" validate:"required"`       // Output directory
	FileName string   `mapstructure:"file_name" validate:"required"` // Output file name (without extension)
	Formats  []string `mapstructure:"formats" validate:"min=1,dive,oneof=html json word docx excel xlsx openapi oas swagger"`

	// Optional .docx with {{Title}}, {{Date}}, {{TotalSchemas}} and {{Content}} placeholders
	WordTemplate string `mapstructure:"word_template"`
}

var validate = validator.New()

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set sensible defaults
	setDefaults(v)

	// APIDOCS_OUTPUT_DIR overrides output.dir, and so on
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Printf("  Input:  %s\n", v.GetString("input.path"))
			fmt.Printf("  Output: %s\n", v.GetString("output.dir"))
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.NormalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "./docs.json")
	v.SetDefault("input.encoding", []string{"utf-8", "gb18030", "euc-kr"})

	v.SetDefault("render.title", "API Documentation")
	v.SetDefault("render.language", "en")
	v.SetDefault("render.allow_duplicate_ids", false)
	v.SetDefault("render.highlight", true)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "api-docs")
	v.SetDefault("output.formats", []string{"html", "json"})
	v.SetDefault("output.word_template", "")
}

// NormalizePaths converts relative paths to absolute paths
func (c *Config) NormalizePaths() error {
	absInput, err := filepath.Abs(c.Input.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve input.path: %w", err)
	}
	c.Input.Path = absInput

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// GetOutputPath returns the full path of the output file with the given extension
func (c *Config) GetOutputPath(ext string) string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+"."+strings.TrimPrefix(ext, "."))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describeFieldError(fe))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	if _, err := os.Stat(c.Input.Path); os.IsNotExist(err) {
		return fmt.Errorf("input.path does not exist: %s", c.Input.Path)
	}

	if c.Output.WordTemplate != "" {
		if _, err := os.Stat(c.Output.WordTemplate); os.IsNotExist(err) {
			return fmt.Errorf("output.word_template does not exist: %s", c.Output.WordTemplate)
		}
	}

	return nil
}

// describeFieldError maps a validator failure back to its config key
func describeFieldError(fe validator.FieldError) string {
	key := configKey(fe.StructNamespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be empty", key)
	case "min":
		return fmt.Sprintf("%s must contain at least %s entry", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s has unsupported value %q (allowed: %s)", key, fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}

var configKeys = map[string]string{
	"Input":             "input",
	"Path":              "path",
	"Encoding":          "encoding",
	"Render":            "render",
	"Language":          "language",
	"Output":            "output",
	"Dir":               "dir",
	"FileName":          "file_name",
	"Formats":           "formats",
	"Title":             "title",
	"AllowDuplicateIDs": "allow_duplicate_ids",
	"WordTemplate":      "word_template",
}

// configKey turns "Config.Output.FileName" into "output.file_name"
func configKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		name, index, _ := strings.Cut(part, "[")
		if key, ok := configKeys[name]; ok {
			name = key
		}
		if index != "" {
			name += "[" + index
		}
		parts[i] = name
	}
	return strings.Join(parts, ".")
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== API Docs Configuration ===")
	fmt.Printf("Input Path:       %s\n", c.Input.Path)
	fmt.Printf("Encoding Hints:   %v\n", c.Input.Encoding)
	fmt.Printf("Title:            %s\n", c.Render.Title)
	fmt.Printf("Language:         %s\n", c.Render.Language)
	fmt.Printf("Duplicate IDs:    %v\n", c.Render.AllowDuplicateIDs)
	fmt.Printf("Highlight:        %v\n", c.Render.Highlight)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output Formats:   %v\n", c.Output.Formats)
	fmt.Println("==============================")
}
