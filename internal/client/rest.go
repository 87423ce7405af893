package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// RestAPIParameters is a struct to hold the parameters for a REST API call
type RestAPIParameters struct {
	reqBytes        []byte
	method          string
	urlRoute        string
	query           url.Values
	operationString string
	// timeout overrides the client timeout for long-running operations
	timeout time.Duration
}

// RestAPICall makes a REST API call to the Brigid API and returns the
// response body and status code. Transport failures are errors; non-2xx
// statuses are left to the typed callers to interpret.
func (a *AuthAPIClient) RestAPICall(
	params RestAPIParameters,
) ([]byte, int, error) {
	token := viper.GetString("apiToken")

	reqBuf := bytes.NewBuffer(params.reqBytes)

	endpoint := fmt.Sprintf("%s://%s/api/v1/%s",
		a.RestClient.Scheme, a.RestClient.Host, params.urlRoute)
	if len(params.query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, params.query.Encode())
	}

	req, err := http.NewRequestWithContext(a.ctx, params.method, endpoint, reqBuf)
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+token)

	httpClient := a.RestClient.Client
	if params.timeout > 0 {
		httpClient = &http.Client{Timeout: params.timeout}
	}

	r, err := httpClient.Do(req)
	if err != nil {
		return nil, 0,
			fmt.Errorf("Error occurred during %s call for %s: %s",
				params.method,
				params.operationString,
				err.Error())
	}
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, r.StatusCode,
			fmt.Errorf("Error reading %s response body: %s",
				params.operationString,
				err.Error())
	}

	return body, r.StatusCode, nil
}
