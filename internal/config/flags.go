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
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-pinning-api-url pinning service API base URL
//	-pinning-gateway-url pinning gateway base URL
//	-pinning-jwt pinning service bearer token
//	-pinning-timeout outbound pinning call timeout
//	-chain-rpc-url contract execution RPC endpoint
//	-chain-contract contract address (0x-prefixed hex)
//	-chain-timeout outbound contract call timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var pinningAPIURL string
	var pinningGatewayURL string
	var pinningJWT string
	var pinningTimeout time.Duration
	var chainRPCURL string
	var chainContract string
	var chainTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&pinningAPIURL, "pinning-api-url", "", "Pinning service API base URL")
	flag.StringVar(&pinningGatewayURL, "pinning-gateway-url", "", "Pinning gateway base URL")
	flag.StringVar(&pinningJWT, "pinning-jwt", "", "Pinning service bearer token")
	flag.DurationVar(&pinningTimeout, "pinning-timeout", 0, "Pinning call timeout (e.g., 30s)")
	flag.StringVar(&chainRPCURL, "chain-rpc-url", "", "Contract execution RPC endpoint")
	flag.StringVar(&chainContract, "chain-contract", "", "Marketplace contract address")
	flag.DurationVar(&chainTimeout, "chain-timeout", 0, "Contract call timeout (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
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
		Pinning: Pinning{
			APIURL:     pinningAPIURL,
			GatewayURL: pinningGatewayURL,
			JWT:        pinningJWT,
			Timeout:    pinningTimeout,
		},
		Chain: Chain{
			RPCURL:          chainRPCURL,
			ContractAddress: chainContract,
			Timeout:         chainTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
