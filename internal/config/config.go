package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	MetricsBackendFile     = "file"
	MetricsBackendPostgres = "postgres"
	MetricsBackendSQLite   = "sqlite"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Model               Model               `mapstructure:",squash"`
	Metrics             Metrics             `mapstructure:",squash"`
	Features            Features            `mapstructure:",squash"`
	Prediction          Prediction          `mapstructure:",squash"`
	RateLimit           RateLimit           `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	FeaturePipelineSync FeaturePipelineSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Model struct {
	Path string `mapstructure:"model_path"`
}

type Metrics struct {
	Backend    string `mapstructure:"metrics_backend"`
	File       string `mapstructure:"metrics_file"`
	SQLitePath string `mapstructure:"metrics_sqlite_path"`
}

type Features struct {
	File              string `mapstructure:"features_file"`
	DBEnabled         bool   `mapstructure:"features_db_enabled"`
	RawDataFile       string `mapstructure:"raw_data_file"`
	GapPolicy         string `mapstructure:"gap_policy"`
	RequireCustomerID bool   `mapstructure:"require_customer_id"`
}

type Prediction struct {
	Countries      []string `mapstructure:"prediction_countries"`
	MaxConcurrency int      `mapstructure:"prediction_max_concurrency"`
	RecentLimit    int      `mapstructure:"prediction_recent_limit"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rate_limit_rps"`
	Burst int     `mapstructure:"rate_limit_burst"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type FeaturePipelineSync struct {
	CronSchedule string `mapstructure:"feature_pipeline_cron"`
	Enabled      bool   `mapstructure:"feature_pipeline_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MODEL_PATH", "models/revenue_model.json")

	viper.SetDefault("METRICS_BACKEND", MetricsBackendFile)
	viper.SetDefault("METRICS_FILE", "logs/metrics.json")
	viper.SetDefault("METRICS_SQLITE_PATH", "data/metrics.db")

	viper.SetDefault("FEATURES_FILE", "data/processed/features.csv")
	viper.SetDefault("FEATURES_DB_ENABLED", false)
	viper.SetDefault("RAW_DATA_FILE", "data/raw/online_retail.csv")
	viper.SetDefault("GAP_POLICY", "preserve")     // preserve | zero_fill
	viper.SetDefault("REQUIRE_CUSTOMER_ID", false) // vendas sem cliente contam para receita

	viper.SetDefault("PREDICTION_COUNTRIES", "US,UK,DE,FR")
	viper.SetDefault("PREDICTION_MAX_CONCURRENCY", 4)
	viper.SetDefault("PREDICTION_RECENT_LIMIT", 100)

	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("FEATURE_PIPELINE_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("FEATURE_PIPELINE_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Prediction.Countries = normalizeCountries(config.Prediction.Countries)
	config.Metrics.Backend = strings.ToLower(strings.TrimSpace(config.Metrics.Backend))

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Metrics.Backend {
	case MetricsBackendFile, MetricsBackendPostgres, MetricsBackendSQLite:
	default:
		return fmt.Errorf("METRICS_BACKEND inválido: %q", c.Metrics.Backend)
	}

	switch c.Features.GapPolicy {
	case "preserve", "zero_fill":
	default:
		return fmt.Errorf("GAP_POLICY inválido: %q", c.Features.GapPolicy)
	}

	if len(c.Prediction.Countries) == 0 {
		return fmt.Errorf("PREDICTION_COUNTRIES não pode ser vazio")
	}
	if c.Prediction.MaxConcurrency < 1 {
		return fmt.Errorf("PREDICTION_MAX_CONCURRENCY deve ser maior que zero")
	}
	if c.Model.Path == "" {
		return fmt.Errorf("MODEL_PATH é obrigatório")
	}

	return nil
}

func normalizeCountries(countries []string) []string {
	out := make([]string, 0, len(countries))
	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
