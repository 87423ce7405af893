package software

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/caltechads/brigid-cli/cmd/util"
	"github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
)

const (
	defaultSoftwareListing = "table {{.ID}}\t{{.MachineName}}\t{{.Name}}" +
		"\t{{.RepoCreated}}\t{{.RepoModified}}"

	humanNameHeader    = "Human Name"
	authorsHeader      = "Authors"
	gitRepoURLHeader   = "Repo URL"
	repoCreatedHeader  = "Repo Created"
	repoModifiedHeader = "Repo Modified"
	trelloHeader       = "Trello"
	docsHeader         = "Docs"
	codeDropHeader     = "Code Drop"

	// descriptionColumnWidth bounds the description in table listings
	descriptionColumnWidth = 50
)

// Context for software outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	s client.Software
}

// NewSoftwareFormat for formatting output
func NewSoftwareFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultSoftwareListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Software records
func Write(ctx formatter.Context, records []client.Software) error {
	// Check if the format is JSON or Pretty JSON
	if (ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON()) && ctx.Command.IsListCommand() {
		var output []byte
		var err error

		// an empty listing is still a valid JSON array on stdout
		if records == nil {
			records = []client.Software{}
		}

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(records, "", "  ")
		} else {
			output, err = json.Marshal(records)
		}

		if err != nil {
			logrus.Errorf("Error marshaling software records to json: %v\n", err)
			return err
		}

		_, err = ctx.Output.Write(output)
		return err
	}

	render := func(format func(subContext formatter.SubContext) error) error {
		for _, record := range records {
			err := format(&Context{s: record})
			if err != nil {
				logrus.Debugf("Error rendering software record: %v\n", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewSoftwareContext(), render)
}

// NewSoftwareContext creates a new context for rendering software records
func NewSoftwareContext() *Context {
	softwareCtx := Context{}
	softwareCtx.Header = formatter.SubHeaderContext{
		"ID":               formatter.IDHeader,
		"Name":             humanNameHeader,
		"MachineName":      formatter.MachineNameHeader,
		"Description":      formatter.DescriptionHeader,
		"Created":          formatter.CreatedHeader,
		"Modified":         formatter.ModifiedHeader,
		"Authors":          authorsHeader,
		"GitRepoURL":       gitRepoURLHeader,
		"RepoCreated":      repoCreatedHeader,
		"RepoModified":     repoModifiedHeader,
		"TrelloBoardURL":   trelloHeader,
		"DocumentationURL": docsHeader,
		"ArtifactRepoURL":  codeDropHeader,
	}
	return &softwareCtx
}

// ID of the software record
func (c *Context) ID() string {
	return strconv.FormatInt(c.s.ID, 10)
}

// Name is the human name of the software record
func (c *Context) Name() string {
	return c.s.Name
}

// MachineName of the software record
func (c *Context) MachineName() string {
	return c.s.MachineName
}

// Description of the software record, truncated to keep listing rows
// readable. The describe view prints the whole text.
func (c *Context) Description() string {
	return formatter.Truncate(c.s.Description, descriptionColumnWidth)
}

// Created timestamp of the software record
func (c *Context) Created() string {
	return util.PrintTime(c.s.Created)
}

// Modified timestamp of the software record
func (c *Context) Modified() string {
	return util.PrintTime(c.s.Modified)
}

// Authors of the software record, one entry per author
func (c *Context) Authors() string {
	authors := "-"
	for i, author := range c.s.Authors {
		line := formatter.AuthorLine(author.Fullname, author.Email, author.Notes)
		if i == 0 {
			authors = line
		} else {
			authors = fmt.Sprintf("%s, %s", authors, line)
		}
	}
	return authors
}

// GitRepoURL of the software record
func (c *Context) GitRepoURL() string {
	return c.s.GitRepoURL
}

// RepoCreated timestamp of the upstream repository
func (c *Context) RepoCreated() string {
	return util.PrintTime(c.s.RepoCreated)
}

// RepoModified timestamp of the upstream repository
func (c *Context) RepoModified() string {
	return util.PrintTime(c.s.RepoModified)
}

// TrelloBoardURL of the software record
func (c *Context) TrelloBoardURL() string {
	return c.s.TrelloBoardURL
}

// DocumentationURL of the software record
func (c *Context) DocumentationURL() string {
	return c.s.DocumentationURL
}

// ArtifactRepoURL of the software record
func (c *Context) ArtifactRepoURL() string {
	return c.s.ArtifactRepoURL
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.s)
}
