package config

import (
	"os"
	"strconv"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	JWT      JWTConfig      `yaml:"jwt"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Blog     BlogConfig     `yaml:"blog"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	Expiration time.Duration `yaml:"expiration"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	BodyLimit    int           `yaml:"body_limit"` // bytes, áp dụng cho cả file zip import
}

// DatabaseConfig holds postgres connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// BlogConfig chứa các giới hạn nghiệp vụ cho blog
type BlogConfig struct {
	ArchiveDir        string `yaml:"archive_dir"` // Thư mục chứa file zip tạm khi download
	DefaultPageSize   int    `yaml:"default_page_size"`
	MaxPageSize       int    `yaml:"max_page_size"`
	MaxImportFiles    int    `yaml:"max_import_files"`
	MaxImportFileSize int64  `yaml:"max_import_file_size"`
	SummaryLength     int    `yaml:"summary_length"`
	TitleMaxLength    int    `yaml:"title_max_length"`
	SummaryMaxLength  int    `yaml:"summary_max_length"`
	KeywordsMaxLength int    `yaml:"keywords_max_length"`
}

// LoadConfig loads configuration from environment variables.
// Nếu CONFIG_FILE được set, các giá trị trong file YAML sẽ ghi đè lên giá trị từ env;
// file không đọc hoặc parse được thì trả về lỗi.
func LoadConfig() (*Config, error) {
	jwtExpirationHours, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	readTimeout, _ := strconv.Atoi(getEnv("READ_TIMEOUT_SECONDS", "10"))
	writeTimeout, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT_SECONDS", "30"))
	bodyLimit, _ := strconv.Atoi(getEnv("BODY_LIMIT_BYTES", strconv.Itoa(20*1024*1024)))

	cfg := &Config{
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExpirationHours) * time.Hour,
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			BodyLimit:    bodyLimit,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "blogos"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Blog: BlogConfig{
			ArchiveDir:        getEnv("BLOG_ARCHIVE_DIR", os.TempDir()),
			DefaultPageSize:   getEnvInt("BLOG_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:       getEnvInt("BLOG_MAX_PAGE_SIZE", 100),
			MaxImportFiles:    getEnvInt("BLOG_MAX_IMPORT_FILES", 200),
			MaxImportFileSize: int64(getEnvInt("BLOG_MAX_IMPORT_FILE_SIZE", 2*1024*1024)),
			SummaryLength:     getEnvInt("BLOG_SUMMARY_LENGTH", 200),
			TitleMaxLength:    getEnvInt("BLOG_TITLE_MAX_LENGTH", 100),
			SummaryMaxLength:  getEnvInt("BLOG_SUMMARY_MAX_LENGTH", 500),
			KeywordsMaxLength: getEnvInt("BLOG_KEYWORDS_MAX_LENGTH", 200),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return nil, goerrorkit.NewSystemError(err).WithData(map[string]interface{}{
				"config_file": path,
			})
		}
	}

	return cfg, nil
}

// MergeFile overlays values from a YAML file onto cfg.
// Chỉ những key có mặt trong file mới bị ghi đè; file lỗi thì c giữ nguyên.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	merged := *c
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return err
	}
	*c = merged
	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
