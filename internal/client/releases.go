package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/caltechads/brigid-cli/cmd/util"
)

const releaseEntity = "Release"

// releaseExpands are the sub-records the release views need inline
const releaseExpands = "release.software,release.released_by"

// importAllTimeout bounds the bulk release import, which walks every tag
// in the upstream repository
const importAllTimeout = 5 * time.Minute

// ReleaseListParams are the supported filters for listing releases
type ReleaseListParams struct {
	Software string
	Version  string
	Limit    int
}

// ListReleases fetches the release records matching the filters
func (a *AuthAPIClient) ListReleases(params ReleaseListParams) ([]Release, error) {
	query := url.Values{}
	query.Set("expand", releaseExpands)
	if !util.IsEmptyString(params.Software) {
		query.Set("software", params.Software)
	}
	if !util.IsEmptyString(params.Version) {
		query.Set("version", params.Version)
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        "releases/",
		query:           query,
		operationString: "list releases",
	})
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, errorFromResponseBody(body, statusCode, releaseEntity, "List")
	}

	listResponse := releaseListResponse{}
	if err := json.Unmarshal(body, &listResponse); err != nil {
		return nil, fmt.Errorf("could not decode release list response: %w", err)
	}
	return listResponse.Results, nil
}

// GetRelease fetches one release record by id
func (a *AuthAPIClient) GetRelease(id int64) (Release, error) {
	query := url.Values{}
	query.Set("expand", releaseExpands)

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        fmt.Sprintf("releases/%d/", id),
		query:           query,
		operationString: "get release",
	})
	if err != nil {
		return Release{}, err
	}
	if statusCode == http.StatusNotFound {
		return Release{}, &NotFoundError{
			Entity:     releaseEntity,
			Identifier: strconv.FormatInt(id, 10),
		}
	}
	if statusCode != http.StatusOK {
		return Release{}, errorFromResponseBody(body, statusCode, releaseEntity, "Get")
	}

	release := Release{}
	if err := json.Unmarshal(body, &release); err != nil {
		return Release{}, fmt.Errorf("could not decode release response: %w", err)
	}
	return release, nil
}

// ResolveReleaseID resolves an identifier that is either a Release.id or
// a "machine_name:version" string into the record id
func (a *AuthAPIClient) ResolveReleaseID(identifier string) (int64, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return id, nil
	}
	machineName, version, found := strings.Cut(identifier, ":")
	if !found {
		return 0, fmt.Errorf(
			"release identifier %q should be a Release.id or \"machine_name:version\"",
			identifier)
	}
	results, err := a.ListReleases(ReleaseListParams{
		Software: machineName,
		Version:  version,
	})
	if err != nil {
		return 0, err
	}
	switch len(results) {
	case 0:
		return 0, &NotFoundError{Entity: releaseEntity, Identifier: identifier}
	case 1:
		return results[0].ID, nil
	default:
		return 0, &MultipleMatchesError{Entity: releaseEntity, Identifier: identifier}
	}
}

// CreateRelease creates a release record from the given attributes
func (a *AuthAPIClient) CreateRelease(attrs map[string]interface{}) (Release, error) {
	reqBytes, err := json.Marshal(attrs)
	if err != nil {
		return Release{}, err
	}

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		reqBytes:        reqBytes,
		method:          http.MethodPost,
		urlRoute:        "releases/",
		operationString: "create release",
	})
	if err != nil {
		return Release{}, err
	}
	if statusCode != http.StatusCreated && statusCode != http.StatusOK {
		return Release{}, errorFromResponseBody(body, statusCode, releaseEntity, "Create")
	}

	release := Release{}
	if err := json.Unmarshal(body, &release); err != nil {
		return Release{}, fmt.Errorf("could not decode release response: %w", err)
	}
	return release, nil
}

// UpdateRelease patches the given attributes on a release record
func (a *AuthAPIClient) UpdateRelease(
	id int64,
	attrs map[string]interface{},
) (Release, error) {
	reqBytes, err := json.Marshal(attrs)
	if err != nil {
		return Release{}, err
	}

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		reqBytes:        reqBytes,
		method:          http.MethodPatch,
		urlRoute:        fmt.Sprintf("releases/%d/", id),
		operationString: "update release",
	})
	if err != nil {
		return Release{}, err
	}
	if statusCode == http.StatusNotFound {
		return Release{}, &NotFoundError{
			Entity:     releaseEntity,
			Identifier: strconv.FormatInt(id, 10),
		}
	}
	if statusCode != http.StatusOK {
		return Release{}, errorFromResponseBody(body, statusCode, releaseEntity, "Update")
	}

	release := Release{}
	if err := json.Unmarshal(body, &release); err != nil {
		return Release{}, fmt.Errorf("could not decode release response: %w", err)
	}
	return release, nil
}

// DeleteRelease removes a release record
func (a *AuthAPIClient) DeleteRelease(id int64) error {
	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodDelete,
		urlRoute:        fmt.Sprintf("releases/%d/", id),
		operationString: "delete release",
	})
	if err != nil {
		return err
	}
	if statusCode == http.StatusNotFound {
		return &NotFoundError{
			Entity:     releaseEntity,
			Identifier: strconv.FormatInt(id, 10),
		}
	}
	if statusCode != http.StatusNoContent && statusCode != http.StatusOK {
		return errorFromResponseBody(body, statusCode, releaseEntity, "Delete")
	}
	return nil
}

// ImportRelease imports one tagged release for a software record from its
// upstream git repository
func (a *AuthAPIClient) ImportRelease(
	softwareID int64,
	version string,
) (ImportResult, error) {
	reqBytes, err := json.Marshal(map[string]interface{}{
		"software": softwareID,
		"version":  version,
	})
	if err != nil {
		return ImportResult{}, err
	}

	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		reqBytes:        reqBytes,
		method:          http.MethodPost,
		urlRoute:        "releases/import/",
		operationString: "import release",
	})
	if err != nil {
		return ImportResult{}, err
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return ImportResult{}, errorFromResponseBody(body, statusCode, releaseEntity, "Import")
	}

	result := ImportResult{}
	if err := json.Unmarshal(body, &result); err != nil {
		return ImportResult{}, fmt.Errorf("could not decode import response: %w", err)
	}
	return result, nil
}

// ImportAllReleases imports every tagged release for a software record.
// The upstream walk can take minutes, so it runs with a longer timeout
// and a progress spinner.
func (a *AuthAPIClient) ImportAllReleases(softwareID int64) (ImportAllResult, error) {
	reqBytes, err := json.Marshal(map[string]interface{}{
		"software": softwareID,
	})
	if err != nil {
		return ImportAllResult{}, err
	}

	s := spinner.New(spinner.CharSets[36], 300*time.Millisecond)
	s.Suffix = " Importing releases"
	s.Start()
	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		reqBytes:        reqBytes,
		method:          http.MethodPost,
		urlRoute:        "releases/import-all/",
		operationString: "import all releases",
		timeout:         importAllTimeout,
	})
	s.Stop()
	if err != nil {
		return ImportAllResult{}, err
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return ImportAllResult{}, errorFromResponseBody(
			body, statusCode, releaseEntity, "Import All")
	}

	result := ImportAllResult{}
	if err := json.Unmarshal(body, &result); err != nil {
		return ImportAllResult{}, fmt.Errorf("could not decode import response: %w", err)
	}
	return result, nil
}

// SyncRelease re-syncs a release record from its upstream git repository
func (a *AuthAPIClient) SyncRelease(id int64) (int64, error) {
	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodPost,
		urlRoute:        fmt.Sprintf("releases/%d/sync/", id),
		operationString: "sync release",
	})
	if err != nil {
		return 0, err
	}
	if statusCode == http.StatusNotFound {
		return 0, &NotFoundError{
			Entity:     releaseEntity,
			Identifier: strconv.FormatInt(id, 10),
		}
	}
	if statusCode != http.StatusOK {
		return 0, errorFromResponseBody(body, statusCode, releaseEntity, "Sync")
	}

	result := ImportResult{}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("could not decode sync response: %w", err)
	}
	return result.ID, nil
}
