package software

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
)

const (
	softwareGeneral1 = "table {{.ID}}\t{{.MachineName}}\t{{.Description}}"
	softwareGeneral2 = "table {{.Created}}\t{{.Modified}}"
	softwareGitRepo  = "table {{.GitRepoURL}}\t{{.RepoCreated}}\t{{.RepoModified}}"
	softwareURLs     = "table {{.TrelloBoardURL}}\t{{.DocumentationURL}}\t{{.ArtifactRepoURL}}"

	authorLine = "{{.Line}}"
)

// FullSoftwareContext to render the software detail output
type FullSoftwareContext struct {
	formatter.HeaderContext
	formatter.Context
	s client.Software
}

// SetFullSoftware initializes the context with the software record
func (fs *FullSoftwareContext) SetFullSoftware(software client.Software) {
	fs.s = software
}

// NewFullSoftwareFormat for formatting output
func NewFullSoftwareFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultSoftwareListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

type fullSoftwareContext struct {
	Software *Context
}

// softwareDetailContext overrides the listing accessors that truncate
type softwareDetailContext struct {
	*Context
}

// Description of the software record, untruncated
func (c *softwareDetailContext) Description() string {
	return c.s.Description
}

// authorContext renders one authorship entry
type authorContext struct {
	formatter.HeaderContext
	a client.Author
}

// Line renders the author as "Fullname <email> [notes]", the notes only
// when present
func (a *authorContext) Line() string {
	return formatter.AuthorLine(a.a.Fullname, a.a.Email, a.a.Notes)
}

// Write populates the output table to be displayed in the command line
func (fs *FullSoftwareContext) Write() error {
	var err error
	fsc := &fullSoftwareContext{
		Software: &Context{},
	}
	fsc.Software.s = fs.s

	// Title
	fs.Output.Write([]byte(formatter.Colorize(fs.s.Name+":", formatter.CyanBoldColor)))
	fs.Output.Write([]byte("\n"))

	// Section 1: General
	tmpl, err := fs.startSubsection(softwareGeneral1)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fs.Output.Write([]byte(formatter.Colorize("General", formatter.GreenColor)))
	fs.Output.Write([]byte("\n"))
	if err := fs.ContextFormat(tmpl, &softwareDetailContext{fsc.Software}); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fs.PostFormat(tmpl, NewSoftwareContext())
	fs.Output.Write([]byte("\n"))

	tmpl, err = fs.startSubsection(softwareGeneral2)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	if err := fs.ContextFormat(tmpl, fsc.Software); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fs.PostFormat(tmpl, NewSoftwareContext())

	// Section 2: Authors, one line per entry
	tmpl, err = fs.startSubsection(authorLine)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fs.subSection("Authors")
	for _, author := range fs.s.Authors {
		if err := fs.ContextFormat(tmpl, &authorContext{a: author}); err != nil {
			logrus.Errorf("%s", err.Error())
			return err
		}
	}
	fs.PostFormat(tmpl, &authorContext{})

	// Section 3: Git repository
	tmpl, err = fs.startSubsection(softwareGitRepo)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fs.subSection("Git Repository")
	if err := fs.ContextFormat(tmpl, fsc.Software); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fs.PostFormat(tmpl, NewSoftwareContext())

	// Section 4: Related URLs
	tmpl, err = fs.startSubsection(softwareURLs)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fs.subSection("Related URLs")
	if err := fs.ContextFormat(tmpl, fsc.Software); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fs.PostFormat(tmpl, NewSoftwareContext())
	fs.Output.Write([]byte("\n"))

	return nil
}

func (fs *FullSoftwareContext) startSubsection(format string) (*template.Template, error) {
	fs.Buffer = bytes.NewBufferString("")
	fs.ContextHeader = ""
	fs.Format = formatter.Format(format)
	fs.PreFormat()

	return fs.ParseFormat()
}

func (fs *FullSoftwareContext) subSection(name string) {
	fs.Output.Write([]byte("\n"))
	fs.Output.Write([]byte(formatter.Colorize(name, formatter.GreenColor)))
	fs.Output.Write([]byte("\n"))
}

// NewFullSoftwareContext creates a new context for rendering a software record
func NewFullSoftwareContext() *FullSoftwareContext {
	softwareCtx := FullSoftwareContext{}
	softwareCtx.Header = formatter.SubHeaderContext{}
	return &softwareCtx
}

// MarshalJSON function
func (fs *FullSoftwareContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(fs.s)
}
