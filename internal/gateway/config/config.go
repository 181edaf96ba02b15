package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config captures everything the dashboard gateway needs to run.
type Config struct {
	ListenAddr      string
	NodeURL         string
	ContractID      string
	RequestTimeout  time.Duration
	ReadConcurrency int
}

// FromEnv builds the gateway config from environment variables so main stays
// lean. A local .env file is honored when present.
func FromEnv() Config {
	_ = godotenv.Load()

	addr := os.Getenv("AID_GATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	nodeURL := os.Getenv("AID_NODE_URL")
	if nodeURL == "" {
		nodeURL = "http://127.0.0.1:1337"
	}
	contractID := os.Getenv("AID_CONTRACT_ID")
	if contractID == "" {
		contractID = "aidchain"
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("AID_REQUEST_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	concurrency := 8
	if raw := os.Getenv("AID_READ_CONCURRENCY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			concurrency = n
		}
	}

	return Config{
		ListenAddr:      addr,
		NodeURL:         nodeURL,
		ContractID:      contractID,
		RequestTimeout:  timeout,
		ReadConcurrency: concurrency,
	}
}
