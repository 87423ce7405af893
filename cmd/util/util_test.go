package util

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestPrintTime(t *testing.T) {
	ts := time.Date(2021, time.January, 5, 15, 45, 12, 0, time.UTC)
	assert.Check(t, is.Equal("Jan 05, 2021 03:45:12 PM", PrintTime(ts)))

	morning := time.Date(2023, time.November, 28, 9, 3, 7, 0, time.UTC)
	assert.Check(t, is.Equal("Nov 28, 2023 09:03:07 AM", PrintTime(morning)))

	assert.Check(t, is.Equal("-", PrintTime(time.Time{})))
}

func TestIndentBlock(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "single line",
			in:       "fixed a bug",
			expected: "    fixed a bug",
		},
		{
			name:     "multi line indents every line",
			in:       "* fixed a bug\n* added a feature",
			expected: "    * fixed a bug\n    * added a feature",
		},
		{
			name:     "trailing newline is dropped",
			in:       "one\ntwo\n",
			expected: "    one\n    two",
		},
		{
			name:     "empty stays empty",
			in:       "",
			expected: "",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Check(t, is.Equal(tc.expected, IndentBlock(tc.in, ChangelogIndent)))
		})
	}
}

func TestErrorFromResponseBody(t *testing.T) {
	detail := map[string]interface{}{"detail": "Not found."}
	assert.Check(t, is.Equal("Not found.", ErrorFromResponseBody(detail)))

	fieldErrors := map[string]interface{}{
		"name": []interface{}{"This field may not be blank."},
	}
	assert.Check(t, is.Equal(
		"Field: name, Error: This field may not be blank.",
		ErrorFromResponseBody(fieldErrors),
	))

	assert.Check(t, is.Equal("", ErrorFromResponseBody(map[string]interface{}{})))
}

func TestIsEmptyString(t *testing.T) {
	assert.Check(t, IsEmptyString(""))
	assert.Check(t, IsEmptyString("   "))
	assert.Check(t, !IsEmptyString("widget"))
}
