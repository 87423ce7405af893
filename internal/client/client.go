package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/caltechads/brigid-cli/internal/formatter"
)

var cliVersion = "0.1.0"

// SetVersion assigns the version of the Brigid CLI
func SetVersion(version string) {
	cliVersion = version
}

// GetVersion fetches the version of the Brigid CLI
func GetVersion() string {
	return cliVersion
}

// RestClient holds the connection details for the Brigid API host
type RestClient struct {
	Scheme string
	Host   string
	Client *http.Client
}

// AuthAPIClient is an authenticated Brigid API client
type AuthAPIClient struct {
	RestClient *RestClient
	ctx        context.Context
}

// NewAuthAPIClient returns a client built from the active configuration
func NewAuthAPIClient() (*AuthAPIClient, error) {
	host := viper.GetString("host")
	// If the host is empty, then tell the user to run the auth command.
	if len(host) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No valid host detected. "+
					"Run \"brigid auth\" to authenticate with Brigid.\n",
				formatter.RedColor))
	}
	endpoint, err := ParseURL(host)
	if err != nil {
		return nil, err
	}

	apiToken := viper.GetString("apiToken")
	// If the api token is empty, then tell the user to run the auth command.
	if len(apiToken) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No valid API token detected. Run \"brigid auth\" to "+
					"authenticate with Brigid or run the command with the -a flag.\n",
				formatter.RedColor))
	}

	return NewAuthAPIClientInitialize(endpoint)
}

// NewAuthAPIClientInitialize returns a client for the given endpoint. The
// API token is read from the active configuration on every call.
func NewAuthAPIClientInitialize(endpoint *url.URL) (*AuthAPIClient, error) {
	timeout := viper.GetDuration("timeout")
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	restClient := &RestClient{
		Scheme: endpoint.Scheme,
		Host:   endpoint.Host,
		Client: &http.Client{Timeout: timeout},
	}

	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	return &AuthAPIClient{
		RestClient: restClient,
		ctx:        ctx,
	}, nil
}

// AuthenticatedAPIClient is called before every command that accesses the
// Brigid host. It exits with guidance when the configuration is unusable.
func AuthenticatedAPIClient() *AuthAPIClient {
	authAPI, err := NewAuthAPIClient()
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	return authAPI
}

// ParseURL returns a URL if the host string is valid, or returns error
func ParseURL(host string) (*url.URL, error) {
	if strings.HasPrefix(strings.ToLower(host), "http://") {
		warning := formatter.Colorize(
			fmt.Sprintf("You are using insecure api endpoint %s\n", host),
			formatter.YellowColor,
		)
		logrus.Debugf(warning)
	} else if !strings.HasPrefix(strings.ToLower(host), "https://") {
		host = "https://" + host
	}

	endpoint, err := url.ParseRequestURI(host)
	if err != nil {
		return nil, fmt.Errorf("could not parse Brigid url (%s): %w", host, err)
	}
	return endpoint, err
}
