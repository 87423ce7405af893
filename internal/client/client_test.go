package client

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/spf13/viper"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func testClient(t *testing.T, handler http.Handler) *AuthAPIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	endpoint, err := url.Parse(server.URL)
	assert.NilError(t, err)

	viper.Set("apiToken", "test-token")
	authAPI, err := NewAuthAPIClientInitialize(endpoint)
	assert.NilError(t, err)
	return authAPI
}

func TestParseURL(t *testing.T) {
	endpoint, err := ParseURL("brigid-prod.api.caltech.edu")
	assert.NilError(t, err)
	assert.Check(t, is.Equal("https", endpoint.Scheme))
	assert.Check(t, is.Equal("brigid-prod.api.caltech.edu", endpoint.Host))

	endpoint, err = ParseURL("http://localhost:8000")
	assert.NilError(t, err)
	assert.Check(t, is.Equal("http", endpoint.Scheme))
}

func TestRestAPICallSendsTokenHeader(t *testing.T) {
	var gotAuth string
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"count":0,"next":null,"previous":null,"results":[]}`)
	}))

	_, err := authAPI.ListSoftware(SoftwareListParams{})
	assert.NilError(t, err)
	assert.Check(t, is.Equal("Token test-token", gotAuth))
}

func TestResolveSoftwareIDNumeric(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("numeric identifiers should not hit the API")
	}))

	id, err := authAPI.ResolveSoftwareID("42")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(int64(42), id))
}

func TestResolveSoftwareIDByMachineName(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, is.Equal("widget", r.URL.Query().Get("machine_name")))
		fmt.Fprint(w, `{"count":1,"next":null,"previous":null,"results":[
			{"id":7,"name":"Widget","machine_name":"widget"}]}`)
	}))

	id, err := authAPI.ResolveSoftwareID("widget")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(int64(7), id))
}

func TestResolveSoftwareIDNotFound(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count":0,"next":null,"previous":null,"results":[]}`)
	}))

	_, err := authAPI.ResolveSoftwareID("nope")
	assert.Check(t, IsNotFound(err))
	assert.Check(t, is.Equal(`Could not find a Software that matches "nope"`, err.Error()))
}

func TestResolveSoftwareIDAmbiguous(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count":2,"next":null,"previous":null,"results":[
			{"id":1,"machine_name":"widget"},{"id":2,"machine_name":"widget-ng"}]}`)
	}))

	_, err := authAPI.ResolveSoftwareID("widget")
	assert.Check(t, err != nil)
	assert.Check(t, is.Equal(
		`More than one Software matches "widget". Be more specific.`, err.Error()))
}

func TestGetSoftwareNotFound(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail":"Not found."}`)
	}))

	_, err := authAPI.GetSoftware(99)
	assert.Check(t, IsNotFound(err))
}

func TestGetSoftwareDecodesRecord(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, is.Equal("/api/v1/software/7/", r.URL.Path))
		fmt.Fprint(w, `{
			"id": 7,
			"name": "Widget",
			"machine_name": "widget",
			"description": "A widget service.",
			"created": "2021-01-05T15:45:12Z",
			"modified": "2021-02-01T09:00:00Z",
			"authors": [
				{"fullname": "Alice Smith", "email": "alice@example.com", "notes": "lead"},
				{"fullname": "Bob Jones", "email": "bob@example.com"}
			],
			"git_repo_url": "git@github.com:caltechads/widget.git",
			"repo_created": "2020-06-01T00:00:00Z",
			"repo_modified": "2021-02-01T08:59:59Z",
			"trello_board_url": "https://trello.com/b/widget",
			"documentation_url": "https://widget.readthedocs.io",
			"artifact_repo_url": "https://hub.docker.com/r/caltechads/widget"
		}`)
	}))

	software, err := authAPI.GetSoftware(7)
	assert.NilError(t, err)
	assert.Check(t, is.Equal("Widget", software.Name))
	assert.Check(t, is.Len(software.Authors, 2))
	assert.Check(t, is.Equal("lead", software.Authors[0].Notes))
	assert.Check(t, is.Equal("", software.Authors[1].Notes))
	assert.Check(t, is.Equal(2021, software.Created.Year()))
}

func TestResolveReleaseID(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, is.Equal("widget", r.URL.Query().Get("software")))
		assert.Check(t, is.Equal("1.2.3", r.URL.Query().Get("version")))
		fmt.Fprint(w, `{"count":1,"next":null,"previous":null,"results":[
			{"id":11,"software":"widget","version":"1.2.3"}]}`)
	}))

	id, err := authAPI.ResolveReleaseID("widget:1.2.3")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(int64(11), id))
}

func TestResolveReleaseIDBadIdentifier(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("malformed identifiers should not hit the API")
	}))

	_, err := authAPI.ResolveReleaseID("widget")
	assert.Check(t, err != nil)
}

func TestUpdateSoftwareSurfacesValidationErrors(t *testing.T) {
	authAPI := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"name":["This field may not be blank."]}`)
	}))

	_, err := authAPI.UpdateSoftware(7, map[string]interface{}{"name": ""})
	assert.Check(t, err != nil)
	assert.ErrorContains(t, err, "This field may not be blank.")
}
