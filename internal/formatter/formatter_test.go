package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestAuthorLine(t *testing.T) {
	assert.Check(t, is.Equal(
		"Alice Smith <alice@example.com> [lead]",
		AuthorLine("Alice Smith", "alice@example.com", "lead"),
	))
	assert.Check(t, is.Equal(
		"Bob Jones <bob@example.com>",
		AuthorLine("Bob Jones", "bob@example.com", ""),
	))
}

func TestColorizeNoColor(t *testing.T) {
	color.NoColor = true
	for _, c := range []string{
		GreenColor, RedColor, BlueColor, YellowColor,
		CyanColor, CyanBoldColor, WhiteColor,
	} {
		out := Colorize("message", c)
		assert.Check(t, is.Equal("message", out), "color %s", c)
		assert.Check(t, !strings.Contains(out, "\x1b["))
	}
}

func TestColorizeUnknownColorPassesThrough(t *testing.T) {
	assert.Check(t, is.Equal("message", Colorize("message", "magenta")))
}

func TestTruncate(t *testing.T) {
	assert.Check(t, is.Equal("wid...", Truncate("widget-service", 3)))
	// text at or under the length comes back whole
	assert.Check(t, is.Equal("wid", Truncate("wid", 5)))
	assert.Check(t, is.Equal("widget", Truncate("widget", 6)))
	assert.Check(t, is.Equal("", Truncate("widget", 0)))
	assert.Check(t, is.Equal("", Truncate("", 5)))
}

func TestFormatPredicates(t *testing.T) {
	assert.Check(t, Format("table {{.ID}}").IsTable())
	assert.Check(t, Format(JSONFormatKey).IsJSON())
	assert.Check(t, Format(PrettyFormatKey).IsPrettyJSON())
	assert.Check(t, Command("list").IsListCommand())
	assert.Check(t, !Command("describe").IsListCommand())
}
