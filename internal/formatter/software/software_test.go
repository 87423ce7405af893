package software

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
)

func testSoftware() client.Software {
	return client.Software{
		ID:          7,
		Name:        "Widget",
		MachineName: "widget",
		Description: "A widget service.",
		Created:     time.Date(2021, time.January, 5, 15, 45, 12, 0, time.UTC),
		Modified:    time.Date(2021, time.February, 1, 9, 0, 0, 0, time.UTC),
		Authors: []client.Author{
			{Fullname: "Alice Smith", Email: "alice@example.com", Notes: "lead"},
			{Fullname: "Bob Jones", Email: "bob@example.com"},
		},
		GitRepoURL:       "git@github.com:caltechads/widget.git",
		RepoCreated:      time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
		RepoModified:     time.Date(2021, time.February, 1, 8, 59, 59, 0, time.UTC),
		TrelloBoardURL:   "https://trello.com/b/widget",
		DocumentationURL: "https://widget.readthedocs.io",
		ArtifactRepoURL:  "https://hub.docker.com/r/caltechads/widget",
	}
}

func renderFull(t *testing.T, record client.Software) string {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	fullCtx := *NewFullSoftwareContext()
	fullCtx.Output = &out
	fullCtx.Format = NewFullSoftwareFormat(formatter.TableFormatKey)
	fullCtx.SetFullSoftware(record)
	assert.NilError(t, fullCtx.Write())
	return out.String()
}

func TestFullSoftwareAuthorLines(t *testing.T) {
	output := renderFull(t, testSoftware())

	assert.Check(t, is.Contains(output, "Alice Smith <alice@example.com> [lead]"))
	assert.Check(t, is.Contains(output, "Bob Jones <bob@example.com>"))
	// the notes suffix only appears on the author that has notes
	assert.Check(t, !strings.Contains(output, "Bob Jones <bob@example.com> ["))
}

func TestFullSoftwareSections(t *testing.T) {
	output := renderFull(t, testSoftware())

	assert.Check(t, is.Contains(output, "Widget:"))
	assert.Check(t, is.Contains(output, "General"))
	assert.Check(t, is.Contains(output, "Authors"))
	assert.Check(t, is.Contains(output, "Git Repository"))
	assert.Check(t, is.Contains(output, "Related URLs"))
}

func TestFullSoftwareTimestampFormat(t *testing.T) {
	output := renderFull(t, testSoftware())

	assert.Check(t, is.Contains(output, "Jan 05, 2021 03:45:12 PM"))
	assert.Check(t, is.Contains(output, "Feb 01, 2021 09:00:00 AM"))
	assert.Check(t, is.Contains(output, "Jun 01, 2020 12:00:00 AM"))
}

func TestFullSoftwareURLLabels(t *testing.T) {
	output := renderFull(t, testSoftware())

	// labels bind to the matching fields
	assert.Check(t, is.Contains(output, "Trello"))
	assert.Check(t, is.Contains(output, "Docs"))
	assert.Check(t, is.Contains(output, "https://trello.com/b/widget"))
	assert.Check(t, is.Contains(output, "https://widget.readthedocs.io"))
}

func TestFullSoftwareNoColorHasNoEscapes(t *testing.T) {
	output := renderFull(t, testSoftware())
	assert.Check(t, !strings.Contains(output, "\x1b["))
}

func TestWriteTableListing(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	ctx := formatter.Context{
		Command: "list",
		Output:  &out,
		Format:  NewSoftwareFormat(formatter.TableFormatKey),
	}
	assert.NilError(t, Write(ctx, []client.Software{testSoftware()}))

	output := out.String()
	assert.Check(t, is.Contains(output, "Machine Name"))
	assert.Check(t, is.Contains(output, "Human Name"))
	assert.Check(t, is.Contains(output, "widget"))
	assert.Check(t, is.Contains(output, "Jun 01, 2020 12:00:00 AM"))
}

func TestWriteJSONListing(t *testing.T) {
	var out bytes.Buffer
	ctx := formatter.Context{
		Command: "list",
		Output:  &out,
		Format:  NewSoftwareFormat(formatter.JSONFormatKey),
	}
	assert.NilError(t, Write(ctx, []client.Software{testSoftware()}))
	assert.Check(t, is.Contains(out.String(), `"machine_name":"widget"`))
}

func TestWriteJSONEmptyListing(t *testing.T) {
	var out bytes.Buffer
	ctx := formatter.Context{
		Command: "list",
		Output:  &out,
		Format:  NewSoftwareFormat(formatter.JSONFormatKey),
	}
	assert.NilError(t, Write(ctx, nil))
	assert.Check(t, is.Equal("[]", out.String()))
}

func TestDescriptionTruncatedInListingOnly(t *testing.T) {
	color.NoColor = true
	record := testSoftware()
	record.Description = strings.Repeat("a widget service that does widget things ", 4)

	var out bytes.Buffer
	ctx := formatter.Context{
		Command: "list",
		Output:  &out,
		Format:  formatter.Format("table {{.MachineName}}\t{{.Description}}"),
	}
	assert.NilError(t, Write(ctx, []client.Software{record}))
	assert.Check(t, is.Contains(out.String(), "..."))
	assert.Check(t, !strings.Contains(out.String(), record.Description))

	// the describe view prints the whole description
	full := renderFull(t, record)
	assert.Check(t, is.Contains(full, record.Description))
}

func TestWriteUnknownFieldFailsWithoutOutput(t *testing.T) {
	var out bytes.Buffer
	ctx := formatter.Context{
		Command: "list",
		Output:  &out,
		Format:  formatter.Format("{{.NoSuchField}}"),
	}
	err := Write(ctx, []client.Software{testSoftware()})
	assert.Check(t, err != nil)
	assert.Check(t, is.Equal("", out.String()))
}
