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
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Sheets Sheets `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Sheets configura o acesso à planilha de origem. Cada dataset é endereçado
// por um GID estável dentro de uma única planilha.
type Sheets struct {
	SpreadsheetID      string `mapstructure:"spreadsheet_id"`
	ServiceAccountJSON string `mapstructure:"google_service_account_json"`
	ServiceAccountFile string `mapstructure:"google_service_account_file"`
	FetchTimeoutSecs   int    `mapstructure:"sheets_fetch_timeout_seconds"`

	GIDZig         int64 `mapstructure:"gid_zig"`
	GIDFinance     int64 `mapstructure:"gid_finance"`
	GIDTimeline    int64 `mapstructure:"gid_timeline"`
	GIDComissarios int64 `mapstructure:"gid_comissarios"`
	GIDGenero      int64 `mapstructure:"gid_genero"`
	GIDIdade       int64 `mapstructure:"gid_idade"`
	GIDPagamento   int64 `mapstructure:"gid_pagamento"`
	GIDEstado      int64 `mapstructure:"gid_estado"`
	GIDCidade      int64 `mapstructure:"gid_cidade"`
}

// FetchTimeout é o teto de espera por aba. O dashboard de onde esses dados
// vêm não tolera montagem pendurada indefinidamente por um único fetch lento.
func (s Sheets) FetchTimeout() time.Duration {
	if s.FetchTimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.FetchTimeoutSecs) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "credentials.json")
	viper.SetDefault("SHEETS_FETCH_TIMEOUT_SECONDS", 30)

	// GIDs das abas da planilha de origem
	viper.SetDefault("GID_ZIG", 0)
	viper.SetDefault("GID_FINANCE", 1192804610)
	viper.SetDefault("GID_TIMELINE", 631411023)
	viper.SetDefault("GID_COMISSARIOS", 1797204899)
	viper.SetDefault("GID_GENERO", 1480455280)
	viper.SetDefault("GID_IDADE", 2102251348)
	viper.SetDefault("GID_PAGAMENTO", 391085550)
	viper.SetDefault("GID_ESTADO", 249163603)
	viper.SetDefault("GID_CIDADE", 1942719994)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
