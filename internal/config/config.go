package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Analytics        Analytics        `mapstructure:",squash"`
	KpiCounter       KpiCounter       `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Analytics configura o acesso à API remota de analytics de campanhas.
// A URL base é injetada nos construtores, nunca lida de estado global.
type Analytics struct {
	BaseURL               string `mapstructure:"analytics_api_url"`
	RequestTimeoutSeconds int    `mapstructure:"analytics_request_timeout_seconds"`
}

// KpiCounter configura a transição animada dos KPIs exibidos no cabeçalho.
type KpiCounter struct {
	DurationMs int `mapstructure:"kpi_counter_duration_ms"`
	Steps      int `mapstructure:"kpi_counter_steps"`
}

// DashboardRefresh configura a atualização agendada do dashboard sem filtros.
type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

// RequestTimeout converte o timeout configurado para time.Duration.
func (a Analytics) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CounterDuration converte a duração configurada para time.Duration.
func (k KpiCounter) CounterDuration() time.Duration {
	return time.Duration(k.DurationMs) * time.Millisecond
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)

	// API de analytics; em desenvolvimento aponta para o backend local
	viper.SetDefault("ANALYTICS_API_URL", "http://localhost:8000")
	viper.SetDefault("ANALYTICS_REQUEST_TIMEOUT_SECONDS", 30)

	// Cadência da animação dos KPIs do cabeçalho (1200ms / 50 passos)
	viper.SetDefault("KPI_COUNTER_DURATION_MS", 1200)
	viper.SetDefault("KPI_COUNTER_STEPS", 50)

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
