package client

import "time"

// Author is one authorship entry on a software record, also used for the
// releaser on a release record
type Author struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Notes    string `json:"notes,omitempty"`
}

// Software is the metadata Brigid tracks about one piece of software
type Software struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	MachineName      string    `json:"machine_name"`
	Description      string    `json:"description"`
	Created          time.Time `json:"created"`
	Modified         time.Time `json:"modified"`
	Authors          []Author  `json:"authors"`
	GitRepoURL       string    `json:"git_repo_url"`
	RepoCreated      time.Time `json:"repo_created"`
	RepoModified     time.Time `json:"repo_modified"`
	TrelloBoardURL   string    `json:"trello_board_url"`
	DocumentationURL string    `json:"documentation_url"`
	ArtifactRepoURL  string    `json:"artifact_repo_url"`
}

// Release is the metadata about one versioned release of a software record
type Release struct {
	ID          int64     `json:"id"`
	SHA         string    `json:"sha"`
	Software    string    `json:"software"`
	Version     string    `json:"version"`
	ReleasedBy  Author    `json:"released_by"`
	ReleaseTime time.Time `json:"release_time"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Changelog   string    `json:"changelog"`
}

// CurrentUser identifies the user the API token belongs to
type CurrentUser struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// ImportResult is returned by the git import endpoints
type ImportResult struct {
	ID      int64 `json:"id"`
	Created bool  `json:"created"`
}

// ImportAllResult is returned by the bulk release import endpoint
type ImportAllResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type softwareListResponse struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []Software `json:"results"`
}

type releaseListResponse struct {
	Count    int       `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []Release `json:"results"`
}
