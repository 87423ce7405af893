package release

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

func testRelease() client.Release {
	return client.Release{
		ID:       11,
		SHA:      "0a1b2c3d4e5f",
		Software: "widget",
		Version:  "1.2.3",
		ReleasedBy: client.Author{
			Fullname: "Alice Smith",
			Email:    "alice@example.com",
		},
		ReleaseTime: time.Date(2021, time.March, 14, 13, 9, 26, 0, time.UTC),
		Created:     time.Date(2021, time.March, 14, 13, 10, 0, 0, time.UTC),
		Modified:    time.Date(2021, time.March, 15, 8, 0, 0, 0, time.UTC),
		Changelog:   "* fixed a bug\n* added a feature",
	}
}

func renderFull(t *testing.T, record client.Release) string {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	fullCtx := *NewFullReleaseContext()
	fullCtx.Output = &out
	fullCtx.Format = NewFullReleaseFormat(formatter.TableFormatKey)
	fullCtx.SetFullRelease(record)
	assert.NilError(t, fullCtx.Write())
	return out.String()
}

func TestFullReleaseSections(t *testing.T) {
	output := renderFull(t, testRelease())

	assert.Check(t, is.Contains(output, "widget 1.2.3:"))
	assert.Check(t, is.Contains(output, "General"))
	assert.Check(t, is.Contains(output, "Changelog"))
	assert.Check(t, is.Contains(output, "0a1b2c3d4e5f"))
}

func TestFullReleaseChangelogIndented(t *testing.T) {
	output := renderFull(t, testRelease())

	assert.Check(t, is.Contains(output, "    * fixed a bug\n    * added a feature"))
}

func TestFullReleaseEmptyChangelog(t *testing.T) {
	record := testRelease()
	record.Changelog = ""
	output := renderFull(t, record)

	// an empty changelog renders an empty section, not an error
	assert.Check(t, is.Contains(output, "Changelog"))
}

func TestFullReleaseTimestampFormat(t *testing.T) {
	output := renderFull(t, testRelease())

	assert.Check(t, is.Contains(output, "Mar 14, 2021 01:09:26 PM"))
	assert.Check(t, is.Contains(output, "Mar 15, 2021 08:00:00 AM"))
}

func TestReleasedByNotesConditional(t *testing.T) {
	withNotes := testRelease()
	withNotes.ReleasedBy.Notes = "release manager"
	output := renderFull(t, withNotes)
	assert.Check(t, is.Contains(output,
		"Alice Smith <alice@example.com> [release manager]"))

	withoutNotes := testRelease()
	output = renderFull(t, withoutNotes)
	assert.Check(t, is.Contains(output, "Alice Smith <alice@example.com>"))
	assert.Check(t, !strings.Contains(output, "Alice Smith <alice@example.com> ["))
}

func TestWriteTableListing(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	ctx := formatter.Context{
		Command: "list",
		Output:  &out,
		Format:  NewReleaseFormat(formatter.TableFormatKey),
	}
	assert.NilError(t, Write(ctx, []client.Release{testRelease()}))

	output := out.String()
	assert.Check(t, is.Contains(output, "Released By"))
	assert.Check(t, is.Contains(output, "Alice Smith <alice@example.com>"))
	assert.Check(t, is.Contains(output, "1.2.3"))
}

func TestWriteJSONEmptyListing(t *testing.T) {
	var out bytes.Buffer
	ctx := formatter.Context{
		Command: "list",
		Output:  &out,
		Format:  NewReleaseFormat(formatter.JSONFormatKey),
	}
	assert.NilError(t, Write(ctx, nil))
	assert.Check(t, is.Equal("[]", out.String()))
}

func TestWriteJSONListing(t *testing.T) {
	var out bytes.Buffer
	ctx := formatter.Context{
		Command: "list",
		Output:  &out,
		Format:  NewReleaseFormat(formatter.JSONFormatKey),
	}
	assert.NilError(t, Write(ctx, []client.Release{testRelease()}))
	assert.Check(t, is.Contains(out.String(), `"version":"1.2.3"`))
}
