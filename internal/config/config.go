package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/store-performance-api/internal/domain"
)

// Config é o valor de configuração da aplicação, construído uma única vez na
// inicialização e repassado por referência aos componentes. Nenhum componente
// lê configuração de forma ambiente.
type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Source      Source      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	RefreshSync RefreshSync `mapstructure:",squash"`
	Thresholds  Thresholds  `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Source identifica a fonte de dados tabular hospedada de onde os registros
// mensais são lidos.
type Source struct {
	Driver       string `mapstructure:"source_driver"` // grid | postgres
	BaseURL      string `mapstructure:"source_base_url"`
	APIKey       string `mapstructure:"source_api_key"`
	DocID        string `mapstructure:"source_doc_id"`
	RecordsTable string `mapstructure:"source_records_table"`
	StoresTable  string `mapstructure:"source_stores_table"`
	StrictMode   bool   `mapstructure:"source_strict_mode"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	AccessKeyHash string        `mapstructure:"dashboard_access_key_hash"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
}

type RefreshSync struct {
	Interval time.Duration `mapstructure:"refresh_interval"`
	Enabled  bool          `mapstructure:"refresh_sync_enabled"`
}

// Thresholds são os pares decrescentes [high, low] de classificação das taxas,
// por tipo de métrica.
type Thresholds struct {
	ApprovalHigh    float64 `mapstructure:"approval_rate_high"`
	ApprovalLow     float64 `mapstructure:"approval_rate_low"`
	ConversionHigh  float64 `mapstructure:"conversion_rate_high"`
	ConversionLow   float64 `mapstructure:"conversion_rate_low"`
	PenetrationHigh float64 `mapstructure:"penetration_rate_high"`
	PenetrationLow  float64 `mapstructure:"penetration_rate_low"`
}

func (t Thresholds) Approval() domain.Thresholds {
	return domain.Thresholds{High: t.ApprovalHigh, Low: t.ApprovalLow}
}

func (t Thresholds) Conversion() domain.Thresholds {
	return domain.Thresholds{High: t.ConversionHigh, Low: t.ConversionLow}
}

func (t Thresholds) Penetration() domain.Thresholds {
	return domain.Thresholds{High: t.PenetrationHigh, Low: t.PenetrationLow}
}

type Dashboard struct {
	DefaultSortField string `mapstructure:"default_sort_field"`
	DefaultSortDesc  bool   `mapstructure:"default_sort_desc"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SOURCE_DRIVER", "grid")
	viper.SetDefault("SOURCE_BASE_URL", "https://docs.getgrist.com")
	viper.SetDefault("SOURCE_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("SOURCE_DOC_ID", "your_doc_id")
	viper.SetDefault("SOURCE_RECORDS_TABLE", "Monthly_Store_Records")
	viper.SetDefault("SOURCE_STORES_TABLE", "Stores")
	viper.SetDefault("SOURCE_STRICT_MODE", false)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/performance")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("DASHBOARD_ACCESS_KEY_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Defaults para o ciclo de atualização do dashboard
	viper.SetDefault("REFRESH_INTERVAL", "5m") // Intervalo entre atualizações automáticas
	viper.SetDefault("REFRESH_SYNC_ENABLED", true)

	// Pares [high, low] de classificação das taxas
	viper.SetDefault("APPROVAL_RATE_HIGH", 60.0)
	viper.SetDefault("APPROVAL_RATE_LOW", 50.0)
	viper.SetDefault("CONVERSION_RATE_HIGH", 40.0)
	viper.SetDefault("CONVERSION_RATE_LOW", 30.0)
	viper.SetDefault("PENETRATION_RATE_HIGH", 70.0)
	viper.SetDefault("PENETRATION_RATE_LOW", 50.0)

	// Ordenação padrão da tabela de lojas
	viper.SetDefault("DEFAULT_SORT_FIELD", "total_trx")
	viper.SetDefault("DEFAULT_SORT_DESC", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
