package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"
)

const defaultConfigTemplate = "PORT=12000\nDATA_DIR=cms-data\nUPLOAD_DIR=uploads\nENABLE_GZIP=false\nJWT_SECRET=%s\n"

// InitConfig loads the config file and then applies environment variable
// overrides. The config file is created on first run with a random JWT
// secret so a bare deployment never signs tokens with a known key.
func InitConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	applyEnvOverrides()
	if JWTSecret == "" {
		return errors.New("JWT_SECRET is not configured")
	}
	return nil
}

func loadConfigFile() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "portfolio-cms", "config.ini")
	if err := ensureConfigFile(configPath); err != nil {
		return err
	}

	configMap, err := parseIniConfig(configPath)
	if err != nil {
		return err
	}

	if err := applyConfigMap(configMap); err != nil {
		return fmt.Errorf("apply config file %s: %w", configPath, err)
	}

	return nil
}

func ensureConfigFile(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", configDir, err)
	}

	configFile, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create config file %s: %w", configPath, err)
	}
	defer configFile.Close()

	if _, err := configFile.WriteString(fmt.Sprintf(defaultConfigTemplate, uuid.New().String())); err != nil {
		return fmt.Errorf("write default config file %s: %w", configPath, err)
	}

	return nil
}

func parseIniConfig(path string) (map[string]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini config %s: %w", path, err)
	}

	configMap := make(map[string]string)
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			configKey := strings.ToUpper(strings.TrimSpace(key.Name()))
			if configKey == "" {
				continue
			}
			configMap[configKey] = strings.TrimSpace(key.Value())
		}
	}

	return configMap, nil
}

func applyConfigMap(configMap map[string]string) error {
	if configValue, ok := configMap["JWT_SECRET"]; ok && configValue != "" {
		JWTSecret = configValue
	}

	if configValue, ok := configMap["DATA_DIR"]; ok && configValue != "" {
		DataDir = configValue
	}

	if configValue, ok := configMap["UPLOAD_DIR"]; ok && configValue != "" {
		UploadDir = configValue
	}

	if configValue, ok := configMap["SITE_DIR"]; ok && configValue != "" {
		SiteDir = configValue
	}

	if configValue, ok := configMap["ADMIN_DIR"]; ok && configValue != "" {
		AdminDir = configValue
	}

	if configValue, ok := configMap["PORT"]; ok && configValue != "" {
		portInt, err := strconv.Atoi(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for PORT: %w", err)
		}
		*Port = portInt
	}

	if configValue, ok := configMap["ENABLE_GZIP"]; ok && configValue != "" {
		enableGzipBool, err := strconv.ParseBool(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for ENABLE_GZIP: %w", err)
		}
		EnableGzip = enableGzipBool
	}

	return nil
}

func applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		if portInt, err := strconv.Atoi(v); err == nil {
			*Port = portInt
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		JWTSecret = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		DataDir = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		UploadDir = v
	}
	if v := os.Getenv("SITE_DIR"); v != "" {
		SiteDir = v
	}
	if v := os.Getenv("ADMIN_DIR"); v != "" {
		AdminDir = v
	}
}
