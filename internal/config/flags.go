package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-access-sign-key access token signing key
//	-refresh-sign-key refresh token signing key
//	-token-issuer token issuer name
//	-access-duration access token duration (e.g., "1h")
//	-refresh-duration refresh token duration (e.g., "48h")
//	-code-ttl two-factor code time-to-live (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-smtp-host/-smtp-port/-smtp-user/-smtp-password/-smtp-from SMTP account
//	-frontend-origin origin allowed for credentialed CORS
//	-dev enable development mode error detail
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accessSignKey, refreshSignKey string
	var tokenIssuer string
	var accessDuration, refreshDuration, codeTTL time.Duration
	var requestTimeout time.Duration
	var smtpHost, smtpUser, smtpPassword, smtpFrom string
	var smtpPort int
	var frontendOrigin string
	var devMode bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accessSignKey, "access-sign-key", "", "Access token signing key")
	flag.StringVar(&refreshSignKey, "refresh-sign-key", "", "Refresh token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&accessDuration, "access-duration", 0, "Access token duration (e.g., 1h)")
	flag.DurationVar(&refreshDuration, "refresh-duration", 0, "Refresh token duration (e.g., 48h)")
	flag.DurationVar(&codeTTL, "code-ttl", 0, "Two-factor code time-to-live (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&smtpHost, "smtp-host", "", "SMTP server host")
	flag.IntVar(&smtpPort, "smtp-port", 0, "SMTP server port")
	flag.StringVar(&smtpUser, "smtp-user", "", "SMTP account username")
	flag.StringVar(&smtpPassword, "smtp-password", "", "SMTP account password")
	flag.StringVar(&smtpFrom, "smtp-from", "", "Verification email sender address")
	flag.StringVar(&frontendOrigin, "frontend-origin", "", "Origin allowed for credentialed CORS")
	flag.BoolVar(&devMode, "dev", false, "Development mode: expose error detail in responses")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			AccessTokenSignKey:   accessSignKey,
			RefreshTokenSignKey:  refreshSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessDuration,
			RefreshTokenDuration: refreshDuration,
			TwoFACodeTTL:         codeTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			Host:     smtpHost,
			Port:     smtpPort,
			Username: smtpUser,
			Password: smtpPassword,
			From:     smtpFrom,
		},
		App: App{
			FrontendOrigin: frontendOrigin,
			DevMode:        devMode,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
