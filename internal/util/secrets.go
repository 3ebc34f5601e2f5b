package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Secrets struct {
	Db        DbSecrets        `json:"db"`
	ChatGPT   ChatGPTSecrets   `json:"gpt"`
	Dashboard DashboardSecrets `json:"dashboard"`
	Port      int              `json:"port"`

	// DatabaseURL takes precedence over Db when set
	DatabaseURL string `json:"databaseUrl"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

type ChatGPTSecrets struct {
	ApiKey string `json:"apiKey"`
	Model  string `json:"model"`
	// TimeoutSeconds bounds a single summarizer call
	TimeoutSeconds int `json:"timeoutSeconds"`
}

type DashboardSecrets struct {
	RefreshCron   string   `json:"refreshCron"`
	RefreshAgents []string `json:"refreshAgents"`
	CacheTtlMins  int      `json:"cacheTtlMinutes"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func (s Secrets) ConnectionStr() string {
	if s.DatabaseURL != "" {
		return s.DatabaseURL
	}
	return s.Db.ToConnectionStr()
}

func (s Secrets) SummarizerTimeout() time.Duration {
	if s.ChatGPT.TimeoutSeconds <= 0 {
		return 120 * time.Second
	}
	return time.Duration(s.ChatGPT.TimeoutSeconds) * time.Second
}

func (s Secrets) DashboardCacheTtl() time.Duration {
	if s.Dashboard.CacheTtlMins <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(s.Dashboard.CacheTtlMins) * time.Minute
}

func secretsFile() string {
	switch strings.ToLower(os.Getenv("WEALTHDESK_ENV")) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	if f := os.Getenv("WEALTHDESK_SECRETS_FILE"); f != "" {
		return f
	}
	return "/go/src/app/secrets.json"
}

// LoadSecrets reads the secrets file for the current environment and
// applies environment overrides (a .env file is loaded first if present).
// A missing secrets file is tolerated as long as DATABASE_URL is set.
func LoadSecrets() (*Secrets, error) {
	_ = godotenv.Load()

	secrets := Secrets{}
	f, err := os.ReadFile(secretsFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not open secrets file: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("failed to parse secrets file: %w", err)
		}
	}

	applyEnvOverrides(&secrets)

	if secrets.DatabaseURL == "" && secrets.Db.Host == "" {
		return nil, fmt.Errorf("no database configured: set DATABASE_URL or provide %s", secretsFile())
	}

	return &secrets, nil
}

func applyEnvOverrides(s *Secrets) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		s.DatabaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		s.ChatGPT.ApiKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		s.ChatGPT.Model = v
	}
	if v, err := strconv.Atoi(os.Getenv("SUMMARIZER_TIMEOUT_SECONDS")); err == nil {
		s.ChatGPT.TimeoutSeconds = v
	}
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		s.Port = v
	}
	if v := os.Getenv("DASHBOARD_REFRESH_CRON"); v != "" {
		s.Dashboard.RefreshCron = v
	}
	if v := os.Getenv("DASHBOARD_REFRESH_AGENTS"); v != "" {
		agents := []string{}
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				agents = append(agents, a)
			}
		}
		s.Dashboard.RefreshAgents = agents
	}
	if s.Port == 0 {
		s.Port = 8111
	}
}
