package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/caltechads/brigid-cli/cmd/util"
)

// NotFoundError indicates the API holds no entity matching the identifier
type NotFoundError struct {
	Entity     string
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Could not find a %s that matches \"%s\"", e.Entity, e.Identifier)
}

// MultipleMatchesError indicates an identifier resolved to more than one entity
type MultipleMatchesError struct {
	Entity     string
	Identifier string
}

func (e *MultipleMatchesError) Error() string {
	return fmt.Sprintf("More than one %s matches \"%s\". Be more specific.",
		e.Entity, e.Identifier)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// errorFromResponseBody turns a non-2xx API response body into an error,
// decoding the structured Brigid error payload when one is present
func errorFromResponseBody(body []byte, statusCode int, entityName,
	operation string) error {
	errorTag := fmt.Errorf("%s, Operation: %s - request failed with status %d",
		entityName, operation, statusCode)
	errorBlock := map[string]interface{}{}
	if err := json.Unmarshal(body, &errorBlock); err != nil {
		return errorTag
	}
	errorString := util.ErrorFromResponseBody(errorBlock)
	if util.IsEmptyString(errorString) {
		return errorTag
	}
	return fmt.Errorf("%w: %s", errorTag, errorString)
}
