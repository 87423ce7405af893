package release

import (
	"encoding/json"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/caltechads/brigid-cli/cmd/util"
	"github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
)

const (
	defaultReleaseListing = "table {{.ID}}\t{{.Software}}\t{{.Version}}" +
		"\t{{.ReleasedBy}}\t{{.ReleaseTime}}"

	softwareHeader    = "Software"
	shaHeader         = "SHA"
	releasedByHeader  = "Released By"
	releaseTimeHeader = "Released"
	changelogHeader   = "Changelog"
)

// Context for release outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	r client.Release
}

// NewReleaseFormat for formatting output
func NewReleaseFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultReleaseListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Release records
func Write(ctx formatter.Context, releases []client.Release) error {
	// Check if the format is JSON or Pretty JSON
	if (ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON()) && ctx.Command.IsListCommand() {
		var output []byte
		var err error

		// an empty listing is still a valid JSON array on stdout
		if releases == nil {
			releases = []client.Release{}
		}

		if ctx.Format.IsPrettyJSON() {
			output, err = json.MarshalIndent(releases, "", "  ")
		} else {
			output, err = json.Marshal(releases)
		}

		if err != nil {
			logrus.Errorf("Error marshaling releases to json: %v\n", err)
			return err
		}

		_, err = ctx.Output.Write(output)
		return err
	}

	render := func(format func(subContext formatter.SubContext) error) error {
		for _, release := range releases {
			err := format(&Context{r: release})
			if err != nil {
				logrus.Debugf("Error rendering release: %v\n", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewReleaseContext(), render)
}

// NewReleaseContext creates a new context for rendering releases
func NewReleaseContext() *Context {
	releaseCtx := Context{}
	releaseCtx.Header = formatter.SubHeaderContext{
		"ID":          formatter.IDHeader,
		"SHA":         shaHeader,
		"Software":    softwareHeader,
		"Version":     formatter.VersionHeader,
		"ReleasedBy":  releasedByHeader,
		"ReleaseTime": releaseTimeHeader,
		"Created":     formatter.CreatedHeader,
		"Modified":    formatter.ModifiedHeader,
		"Changelog":   changelogHeader,
	}
	return &releaseCtx
}

// ID of the release record
func (c *Context) ID() string {
	return strconv.FormatInt(c.r.ID, 10)
}

// SHA of the build the release was cut from
func (c *Context) SHA() string {
	return c.r.SHA
}

// Software machine name the release belongs to
func (c *Context) Software() string {
	return c.r.Software
}

// Version of the release
func (c *Context) Version() string {
	return c.r.Version
}

// ReleasedBy renders the releaser with the bracketed notes suffix when
// notes are present
func (c *Context) ReleasedBy() string {
	return formatter.AuthorLine(
		c.r.ReleasedBy.Fullname,
		c.r.ReleasedBy.Email,
		c.r.ReleasedBy.Notes,
	)
}

// ReleaseTime of the release
func (c *Context) ReleaseTime() string {
	return util.PrintTime(c.r.ReleaseTime)
}

// Created timestamp of the release record
func (c *Context) Created() string {
	return util.PrintTime(c.r.Created)
}

// Modified timestamp of the release record
func (c *Context) Modified() string {
	return util.PrintTime(c.r.Modified)
}

// Changelog block of the release, every line indented
func (c *Context) Changelog() string {
	return util.IndentBlock(c.r.Changelog, util.ChangelogIndent)
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.r)
}
