package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a flag.Value accepting "host:port". An empty host means all
// interfaces.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a partial config.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	cfg := new(StructuredConfig)

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	flag.StringVar(&cfg.Storage.DataDir, "data-dir", "", "Directory holding the JSON documents")
	flag.StringVar(&cfg.Storage.UploadDir, "upload-dir", "", "Directory holding uploaded media")
	flag.StringVar(&cfg.Storage.StaticDir, "static-dir", "", "Directory served for static assets")
	flag.Int64Var(&cfg.Storage.MaxUploadBytes, "max-upload-bytes", 0, "Maximum size of one upload")

	flag.StringVar(&cfg.App.AdminUsername, "admin-username", "", "Bootstrap admin username")
	flag.StringVar(&cfg.App.AdminPassword, "admin-password", "", "Bootstrap admin password")
	flag.DurationVar(&cfg.App.SessionTTL, "session-ttl", 0, "Session lifetime (e.g., 12h)")
	flag.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&cfg.Server.SecureCookies, "secure-cookies", false, "Mark session cookies Secure")
	flag.DurationVar(&cfg.Notify.SMTPTimeout, "smtp-timeout", 0, "SMTP conversation timeout")

	flag.Parse()

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
