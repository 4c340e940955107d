package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a backend address, e.g. http://localhost:8080
//	-base-path API prefix, e.g. /api/v1
//	-request-timeout outbound request timeout (e.g. "30s")
//	-d chat history DSN (sqlite file path or postgres:// URL)
//	-w web console address in format [host]:[port]
//	-user-id user id sent with chat messages
//	-notification-ttl how long toasts stay visible (e.g. "3s")
//	-log-level zerolog level
//	-history-retention how long chat turns are kept (e.g. "720h"); a negative value such as "-1s" disables pruning
//	-prune-interval how often expired turns are removed (e.g. "1h")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("qa-console", flag.ContinueOnError)

	var webAddress NetAddress
	var backendAddress, basePath, dsn, userID, logLevel, jsonConfigPath string
	var requestTimeout, notificationTTL, historyRetention, pruneInterval time.Duration

	fs.StringVar(&backendAddress, "a", "", "QA backend address")
	fs.StringVar(&basePath, "base-path", "", "API base path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dsn, "d", "", "Chat history DSN")
	fs.Var(&webAddress, "w", "Web console address host:port")
	fs.StringVar(&userID, "user-id", "", "User id sent with chat messages")
	fs.DurationVar(&notificationTTL, "notification-ttl", 0, "Notification lifetime (e.g., 3s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&historyRetention, "history-retention", 0, "Chat history retention (e.g., 720h); negative (e.g., -1s) disables pruning, 0 keeps the default")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "History prune interval (e.g., 1h)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			UserID:          userID,
			NotificationTTL: notificationTTL,
			LogLevel:        logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			BasePath:       basePath,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Web: Web{
			HTTPAddress: webAddress.String(),
		},
		Workers: Workers{
			HistoryRetention: historyRetention,
			PruneInterval:    pruneInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (all interfaces).
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
