package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	APIBaseURL string
	DBDSN      string
	LogFile    string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	api := os.Getenv("API_BASE_URL")
	if api == "" {
		// The catalog backend defaults to a fixed local port.
		api = "http://localhost:50000/api"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "robomart.db"
	} // sqlite file for admin users/sessions
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./robomart.log"
	}

	cfg := Config{Port: port, APIBaseURL: api, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s API_BASE_URL=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.APIBaseURL, cfg.DBDSN, cfg.LogFile)
	return cfg
}
