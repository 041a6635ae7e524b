package core

import (
	"fmt"
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName          string
		Env              string // DEV (default), TEST, QA, PROD
		Debug            bool
		TestMode         bool
		Build            string
		SecretKey        string
		FrontendBaseURL  string
		DefaultFromEmail string
		SendgridAPIKey   string
		RollbarToken     string

		Server    ServerConfig
		Database  DatabaseConfig
		Assistant AssistantConfig
	}

	ServerConfig struct {
		Host                      string
		APIHost                   string
		DebugHost                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          string
		DisableTLS    bool
	}

	AssistantConfig struct {
		FreeDailyLimit    int
		KnowledgeBaseURL  string
		KnowledgeTimeout  time.Duration
		Generative        string // "", "huggingface" or "openai"
		GenerativeBaseURL string
		GenerativeToken   string
		GenerativeModel   string
		GenerateTimeout   time.Duration
		GenerateRetries   int
	}
)

func (c DatabaseConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) FromEmail() mail.Address {
	return mail.Address{Name: c.AppName, Address: c.DefaultFromEmail}
}

func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Academia")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "q29x&je6maz)7^$d-cjqmz+%b7oc5.sy41y_=m9&rr=very2ih")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAPIHost", "0.0.0.0:8000")
	conf.SetDefault("serverDebugHost", "0.0.0.0:4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("databaseEngine", "postgres")
	conf.SetDefault("databaseName", "academia")
	conf.SetDefault("databaseUser", "academia")
	conf.SetDefault("databasePassword", "academia")
	conf.SetDefault("databaseAdminUser", "")
	conf.SetDefault("databaseAdminPassword", "")
	conf.SetDefault("databaseHost", "localhost")
	conf.SetDefault("databasePort", "5432")
	conf.SetDefault("databaseDisableTLS", true)
	conf.SetDefault("assistantFreeDailyLimit", 10)
	conf.SetDefault("assistantKnowledgeBaseURL", "https://en.wikipedia.org/api/rest_v1/page/summary")
	conf.SetDefault("assistantKnowledgeTimeout", 10*time.Second)
	conf.SetDefault("assistantGenerative", "")
	conf.SetDefault("assistantGenerativeBaseURL", "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2")
	conf.SetDefault("assistantGenerativeToken", "")
	conf.SetDefault("assistantGenerativeModel", "")
	conf.SetDefault("assistantGenerateTimeout", 30*time.Second)
	conf.SetDefault("assistantGenerateRetries", 3)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:          conf.GetString("appName"),
		Env:              env,
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		Build:            conf.GetString("build"),
		SecretKey:        conf.GetString("secretKey"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		DefaultFromEmail: conf.GetString("defaultFromEmail"),
		SendgridAPIKey:   conf.GetString("sendgridAPIKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:                      conf.GetString("serverHost"),
			APIHost:                   conf.GetString("serverAPIHost"),
			DebugHost:                 conf.GetString("serverDebugHost"),
			ShutdownTimeout:           conf.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta:        conf.GetDuration("jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("jwtRefreshExpirationDelta"),
		},
		Database: DatabaseConfig{
			Engine:        conf.GetString("databaseEngine"),
			Name:          conf.GetString("databaseName"),
			User:          conf.GetString("databaseUser"),
			Password:      conf.GetString("databasePassword"),
			AdminUser:     conf.GetString("databaseAdminUser"),
			AdminPassword: conf.GetString("databaseAdminPassword"),
			Host:          conf.GetString("databaseHost"),
			Port:          conf.GetString("databasePort"),
			DisableTLS:    conf.GetBool("databaseDisableTLS"),
		},
		Assistant: AssistantConfig{
			FreeDailyLimit:    conf.GetInt("assistantFreeDailyLimit"),
			KnowledgeBaseURL:  conf.GetString("assistantKnowledgeBaseURL"),
			KnowledgeTimeout:  conf.GetDuration("assistantKnowledgeTimeout"),
			Generative:        conf.GetString("assistantGenerative"),
			GenerativeBaseURL: conf.GetString("assistantGenerativeBaseURL"),
			GenerativeToken:   conf.GetString("assistantGenerativeToken"),
			GenerativeModel:   conf.GetString("assistantGenerativeModel"),
			GenerateTimeout:   conf.GetDuration("assistantGenerateTimeout"),
			GenerateRetries:   conf.GetInt("assistantGenerateRetries"),
		},
	}
}
