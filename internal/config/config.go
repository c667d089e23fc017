package config

import (
	"flag"
	"os"
)

var (
	RunAddr     string
	DataBaseURL string
	AdminLogin  string
)

func ParseFlags() {
	flag.StringVar(&RunAddr, "a", "localhost:8080", "address and port to run server")
	flag.StringVar(&DataBaseURL, "d", "", "postgres connection url")
	flag.StringVar(&AdminLogin, "admin", "", "login allowed to list billing profiles")

	flag.Parse()

	envRunAddr := os.Getenv("RUN_ADDRESS")
	if envRunAddr != "" {
		RunAddr = envRunAddr
	}

	envDBConnection := os.Getenv("DATABASE_URI")
	if envDBConnection != "" {
		DataBaseURL = envDBConnection
	}

	envAdminLogin := os.Getenv("ADMIN_LOGIN")
	if envAdminLogin != "" {
		AdminLogin = envAdminLogin
	}
}
