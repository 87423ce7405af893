package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/caltechads/brigid-cli/cmd/util"
)

const softwareEntity = "Software"

// softwareExpands are the sub-records the detail views need inline
const softwareExpands = "software.applications,software.authors"

// SoftwareListParams are the supported filters for listing software
type SoftwareListParams struct {
	Name           string
	MachineName    string
	AuthorUsername string
	Limit          int
}

// ListSoftware fetches the software records matching the filters
func (a *AuthAPIClient) ListSoftware(params SoftwareListParams) ([]Software, error) {
	query := url.Values{}
	query.Set("expand", softwareExpands)
	if !util.IsEmptyString(params.Name) {
		query.Set("name", params.Name)
	}
	if !util.IsEmptyString(params.MachineName) {
		query.Set("machine_name", params.MachineName)
	}
	if !util.IsEmptyString(params.AuthorUsername) {
		query.Set("author_username", params.AuthorUsername)
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        "software/",
		query:           query,
		operationString: "list software",
	})
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, errorFromResponseBody(body, statusCode, softwareEntity, "List")
	}

	listResponse := softwareListResponse{}
	if err := json.Unmarshal(body, &listResponse); err != nil {
		return nil, fmt.Errorf("could not decode software list response: %w", err)
	}
	return listResponse.Results, nil
}

// GetSoftware fetches one software record by id
func (a *AuthAPIClient) GetSoftware(id int64) (Software, error) {
	query := url.Values{}
	query.Set("expand", softwareExpands)

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        fmt.Sprintf("software/%d/", id),
		query:           query,
		operationString: "get software",
	})
	if err != nil {
		return Software{}, err
	}
	if statusCode == http.StatusNotFound {
		return Software{}, &NotFoundError{
			Entity:     softwareEntity,
			Identifier: strconv.FormatInt(id, 10),
		}
	}
	if statusCode != http.StatusOK {
		return Software{}, errorFromResponseBody(body, statusCode, softwareEntity, "Get")
	}

	software := Software{}
	if err := json.Unmarshal(body, &software); err != nil {
		return Software{}, fmt.Errorf("could not decode software response: %w", err)
	}
	return software, nil
}

// ResolveSoftwareID resolves an identifier that is either a Software.id
// or a Software.machine_name into the record id
func (a *AuthAPIClient) ResolveSoftwareID(identifier string) (int64, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return id, nil
	}
	results, err := a.ListSoftware(SoftwareListParams{MachineName: identifier})
	if err != nil {
		return 0, err
	}
	switch len(results) {
	case 0:
		return 0, &NotFoundError{Entity: softwareEntity, Identifier: identifier}
	case 1:
		return results[0].ID, nil
	default:
		return 0, &MultipleMatchesError{Entity: softwareEntity, Identifier: identifier}
	}
}

// UpdateSoftware patches the given attributes on a software record
func (a *AuthAPIClient) UpdateSoftware(
	id int64,
	attrs map[string]interface{},
) (Software, error) {
	reqBytes, err := json.Marshal(attrs)
	if err != nil {
		return Software{}, err
	}

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		reqBytes:        reqBytes,
		method:          http.MethodPatch,
		urlRoute:        fmt.Sprintf("software/%d/", id),
		operationString: "update software",
	})
	if err != nil {
		return Software{}, err
	}
	if statusCode == http.StatusNotFound {
		return Software{}, &NotFoundError{
			Entity:     softwareEntity,
			Identifier: strconv.FormatInt(id, 10),
		}
	}
	if statusCode != http.StatusOK {
		return Software{}, errorFromResponseBody(body, statusCode, softwareEntity, "Update")
	}

	software := Software{}
	if err := json.Unmarshal(body, &software); err != nil {
		return Software{}, fmt.Errorf("could not decode software response: %w", err)
	}
	return software, nil
}

// DeleteSoftware removes a software record
func (a *AuthAPIClient) DeleteSoftware(id int64) error {
	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodDelete,
		urlRoute:        fmt.Sprintf("software/%d/", id),
		operationString: "delete software",
	})
	if err != nil {
		return err
	}
	if statusCode == http.StatusNotFound {
		return &NotFoundError{
			Entity:     softwareEntity,
			Identifier: strconv.FormatInt(id, 10),
		}
	}
	if statusCode != http.StatusNoContent && statusCode != http.StatusOK {
		return errorFromResponseBody(body, statusCode, softwareEntity, "Delete")
	}
	return nil
}

// ImportSoftware imports a git repository into Brigid, creating or
// updating the software record for it
func (a *AuthAPIClient) ImportSoftware(repository string) (ImportResult, error) {
	reqBytes, err := json.Marshal(map[string]string{"repository": repository})
	if err != nil {
		return ImportResult{}, err
	}

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		reqBytes:        reqBytes,
		method:          http.MethodPost,
		urlRoute:        "software/import/",
		operationString: "import software",
	})
	if err != nil {
		return ImportResult{}, err
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return ImportResult{}, errorFromResponseBody(body, statusCode, softwareEntity, "Import")
	}

	result := ImportResult{}
	if err := json.Unmarshal(body, &result); err != nil {
		return ImportResult{}, fmt.Errorf("could not decode import response: %w", err)
	}
	return result, nil
}

// SyncSoftware re-syncs a software record from its upstream git provider
func (a *AuthAPIClient) SyncSoftware(id int64) (int64, error) {
	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        fmt.Sprintf("software/%d/sync/", id),
		operationString: "sync software",
	})
	if err != nil {
		return 0, err
	}
	if statusCode == http.StatusNotFound {
		return 0, &NotFoundError{
			Entity:     softwareEntity,
			Identifier: strconv.FormatInt(id, 10),
		}
	}
	if statusCode != http.StatusOK {
		return 0, errorFromResponseBody(body, statusCode, softwareEntity, "Sync")
	}

	result := ImportResult{}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("could not decode sync response: %w", err)
	}
	return result.ID, nil
}
