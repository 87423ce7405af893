package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Whoami fetches the user the configured API token belongs to. Used to
// validate credentials during auth.
func (a *AuthAPIClient) Whoami() (CurrentUser, error) {
	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        "users/me/",
		operationString: "whoami",
	})
	if err != nil {
		return CurrentUser{}, err
	}
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return CurrentUser{}, fmt.Errorf("the API token was rejected by the Brigid host")
	}
	if statusCode != http.StatusOK {
		return CurrentUser{}, errorFromResponseBody(body, statusCode, "Session", "Whoami")
	}

	user := CurrentUser{}
	if err := json.Unmarshal(body, &user); err != nil {
		return CurrentUser{}, fmt.Errorf("could not decode whoami response: %w", err)
	}
	return user, nil
}
