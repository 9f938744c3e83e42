package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host               string
	Port               string
	CORSAllowedOrigins []string
	LogLevel           string
	LogFormat          string

	OpenAQAPIKey    string
	OpenAQBaseURL   string
	NASAFIRMSKey    string
	NASAFIRMSURL    string
	MethaneBaseURL  string
	ProviderTimeout time.Duration

	// RandomSeed pins the simulated-data generators for reproducible runs.
	// 0 means seed from the wall clock.
	RandomSeed int64
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func parseCSVList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func Load() (Config, error) {
	cfg := Config{
		Host:               strings.TrimSpace(getenv("HOST", "0.0.0.0")),
		Port:               strings.TrimSpace(getenv("PORT", "8000")),
		CORSAllowedOrigins: parseCSVList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL", "info"))),
		LogFormat:          strings.ToLower(strings.TrimSpace(getenv("LOG_FORMAT", "json"))),
		OpenAQAPIKey:       strings.TrimSpace(os.Getenv("OPENAQ_API_KEY")),
		OpenAQBaseURL:      strings.TrimSpace(getenv("OPENAQ_BASE_URL", "https://api.openaq.org")),
		NASAFIRMSKey:       strings.TrimSpace(os.Getenv("NASA_FIRMS_API_KEY")),
		NASAFIRMSURL:       strings.TrimSpace(getenv("NASA_FIRMS_BASE_URL", "https://firms.modaps.eosdis.nasa.gov")),
		MethaneBaseURL:     strings.TrimSpace(os.Getenv("METHANE_BASE_URL")),
	}

	timeoutSec, err := strconv.Atoi(strings.TrimSpace(getenv("PROVIDER_TIMEOUT_SECONDS", "5")))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 5
	}
	cfg.ProviderTimeout = time.Duration(timeoutSec) * time.Second

	if raw := strings.TrimSpace(os.Getenv("RANDOM_SEED")); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			cfg.RandomSeed = seed
		}
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
