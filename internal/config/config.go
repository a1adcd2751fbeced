package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Forecast Forecast `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Forecast struct {
	Source       string `mapstructure:"forecast_source"`
	InputPath    string `mapstructure:"forecast_input_path"`
	ProductID    string `mapstructure:"forecast_product_id"`
	RecentWindow int    `mapstructure:"forecast_recent_window"`
	SheetName    string `mapstructure:"forecast_sheet_name"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("FORECAST_SOURCE", SourceFile)
	viper.SetDefault("FORECAST_INPUT_PATH", filepath.Join("assets", "product_entries.csv"))
	viper.SetDefault("FORECAST_PRODUCT_ID", "bea127ac-db11-4671-b988-11046e2d2961")
	viper.SetDefault("FORECAST_RECENT_WINDOW", 12) // Últimos 12 meses
	viper.SetDefault("FORECAST_SHEET_NAME", "")    // Vazio usa a primeira planilha

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica os parâmetros obrigatórios da previsão
func (c *Config) Validate() error {
	switch c.Forecast.Source {
	case SourceFile:
		if c.Forecast.InputPath == "" {
			return fmt.Errorf("config: FORECAST_INPUT_PATH is required for source %q", SourceFile)
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("config: unknown FORECAST_SOURCE %q", c.Forecast.Source)
	}

	if c.Forecast.ProductID == "" {
		return fmt.Errorf("config: FORECAST_PRODUCT_ID is required")
	}

	if c.Forecast.RecentWindow < 1 {
		return fmt.Errorf("config: FORECAST_RECENT_WINDOW must be positive, got %d", c.Forecast.RecentWindow)
	}

	return nil
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
