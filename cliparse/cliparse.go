package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Commands accepted as the first positional argument
const (
	CommandServe     = "serve"
	CommandInit      = "init"
	CommandReset     = "reset"
	CommandForceInit = "force-init"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Command      string
	Port         int
	DatabaseURL  string
	DatabaseType string
	UpstreamURL  string
	Locale       language.Tag
	CSVPath      string
	FetchTimeout time.Duration
}

// ParseFlags loads .env, parses flags and falls back to environment variables.
// CLI flags win over the environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env is not an error
	_ = godotenv.Load()

	fs := flag.NewFlagSet("voter-browser", flag.ContinueOnError)

	var locale, timeout string
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.UpstreamURL, "upstream", "", "Base URL serving /data and /stats for the page")
	fs.StringVar(&locale, "locale", "", "Locale for number formatting (BCP 47)")
	fs.StringVar(&cfg.CSVPath, "csv", "", "Voter status CSV to import")
	fs.StringVar(&timeout, "timeout", "", "Timeout for page fetches")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Command = CommandServe
	if fs.NArg() > 0 {
		cfg.Command = fs.Arg(0)
	}
	switch cfg.Command {
	case CommandServe, CommandInit, CommandReset, CommandForceInit:
	default:
		return Config{}, errors.New("unknown command " + strconv.Quote(cfg.Command))
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("port out of range")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:data/voters.db"
	}

	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = os.Getenv("UPSTREAM_URL")
	}
	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = "http://127.0.0.1:" + strconv.Itoa(cfg.Port)
	}
	cfg.UpstreamURL = strings.TrimRight(cfg.UpstreamURL, "/")

	if locale == "" {
		locale = os.Getenv("LOCALE")
	}
	if locale == "" {
		locale = "en-US"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Config{}, errors.New("invalid locale " + strconv.Quote(locale))
	}
	cfg.Locale = tag

	if cfg.CSVPath == "" {
		cfg.CSVPath = os.Getenv("VOTER_CSV")
	}
	if cfg.CSVPath == "" {
		cfg.CSVPath = "data/voter_status.csv"
	}

	if timeout == "" {
		timeout = os.Getenv("FETCH_TIMEOUT")
	}
	cfg.FetchTimeout = 10 * time.Second
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid fetch timeout " + strconv.Quote(timeout))
		}
		cfg.FetchTimeout = d
	}

	return cfg, nil
}
