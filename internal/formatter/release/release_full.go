package release

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
)

const (
	releaseGeneral1 = "table {{.ID}}\t{{.Software}}\t{{.Version}}\t{{.SHA}}"
	releaseGeneral2 = "table {{.ReleasedBy}}\t{{.ReleaseTime}}"
	releaseRecord   = "table {{.Created}}\t{{.Modified}}"

	changelogBlock = "{{.Changelog}}"
)

// FullReleaseContext to render the release detail output
type FullReleaseContext struct {
	formatter.HeaderContext
	formatter.Context
	r client.Release
}

// SetFullRelease initializes the context with the release record
func (fr *FullReleaseContext) SetFullRelease(release client.Release) {
	fr.r = release
}

// NewFullReleaseFormat for formatting output
func NewFullReleaseFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultReleaseListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

type fullReleaseContext struct {
	Release *Context
}

// Write populates the output table to be displayed in the command line
func (fr *FullReleaseContext) Write() error {
	var err error
	frc := &fullReleaseContext{
		Release: &Context{},
	}
	frc.Release.r = fr.r

	// Title
	title := fmt.Sprintf("%s %s:", fr.r.Software, fr.r.Version)
	fr.Output.Write([]byte(formatter.Colorize(title, formatter.CyanBoldColor)))
	fr.Output.Write([]byte("\n"))

	// Section 1: General
	tmpl, err := fr.startSubsection(releaseGeneral1)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fr.Output.Write([]byte(formatter.Colorize("General", formatter.GreenColor)))
	fr.Output.Write([]byte("\n"))
	if err := fr.ContextFormat(tmpl, frc.Release); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fr.PostFormat(tmpl, NewReleaseContext())
	fr.Output.Write([]byte("\n"))

	tmpl, err = fr.startSubsection(releaseGeneral2)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	if err := fr.ContextFormat(tmpl, frc.Release); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fr.PostFormat(tmpl, NewReleaseContext())

	// Section 2: record timestamps
	tmpl, err = fr.startSubsection(releaseRecord)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fr.subSection("Record")
	if err := fr.ContextFormat(tmpl, frc.Release); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fr.PostFormat(tmpl, NewReleaseContext())

	// Section 3: changelog, every line indented, empty stays empty
	tmpl, err = fr.startSubsection(changelogBlock)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fr.subSection("Changelog")
	if err := fr.ContextFormat(tmpl, frc.Release); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	fr.PostFormat(tmpl, NewReleaseContext())

	return nil
}

func (fr *FullReleaseContext) startSubsection(format string) (*template.Template, error) {
	fr.Buffer = bytes.NewBufferString("")
	fr.ContextHeader = ""
	fr.Format = formatter.Format(format)
	fr.PreFormat()

	return fr.ParseFormat()
}

func (fr *FullReleaseContext) subSection(name string) {
	fr.Output.Write([]byte("\n"))
	fr.Output.Write([]byte(formatter.Colorize(name, formatter.GreenColor)))
	fr.Output.Write([]byte("\n"))
}

// NewFullReleaseContext creates a new context for rendering a release record
func NewFullReleaseContext() *FullReleaseContext {
	releaseCtx := FullReleaseContext{}
	releaseCtx.Header = formatter.SubHeaderContext{}
	return &releaseCtx
}

// MarshalJSON function
func (fr *FullReleaseContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(fr.r)
}
