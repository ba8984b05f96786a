package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/aleister1102/secaudit/internal/common"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads the audit configuration from a YAML or JSON file,
// layered over the defaults. An empty path returns the defaults
// unchanged. YAML is chosen when the extension is .yaml or .yml.
func LoadConfig(filePath string, logger zerolog.Logger) (*SecurityAuditConfig, error) {
	cfg := NewDefaultSecurityAuditConfig()

	if filePath == "" {
		return cfg, nil
	}

	fileManager := common.NewFileManager(logger)
	if !fileManager.FileExists(filePath) {
		return nil, common.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := loadConfigFileContent(fileManager, filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// loadConfigFileContent reads the config file using FileManager
func loadConfigFileContent(fileManager *common.FileManager, filePath string) ([]byte, error) {
	opts := common.DefaultFileReadOptions()
	opts.MaxSize = 10 * 1024 * 1024 // 10MB max config file size

	return fileManager.ReadFile(filePath, opts)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *SecurityAuditConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *SecurityAuditConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return common.WrapErrorf(err, "failed to unmarshal YAML from '%s'", filePath)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *SecurityAuditConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.WrapErrorf(err, "failed to unmarshal JSON from '%s'", filePath)
	}
	return nil
}
