package util

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// TimestampFormat is the display format for every timestamp the CLI
// renders: abbreviated month, day, year, 12-hour clock with seconds.
const TimestampFormat = "Jan 02, 2006 03:04:05 PM"

// ChangelogIndent is the fixed indent width for multi-line text blocks
const ChangelogIndent = 4

// PrintTime returns the timestamp in the CLI display format
func PrintTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(TimestampFormat)
}

// IndentBlock indents every line of text, including the first, by width
// spaces. An empty block stays empty.
func IndentBlock(text string, width int) string {
	if len(text) == 0 {
		return ""
	}
	pad := strings.Repeat(" ", width)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// IsEmptyString checks if the string is empty or whitespace
func IsEmptyString(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsOutputType checks if the output type is t
func IsOutputType(t string) bool {
	return viper.GetString("output") == t
}

// ErrorFromResponseBody flattens a structured Brigid API error payload,
// either {"detail": "..."} or a field -> messages validation map, into a
// readable string
func ErrorFromResponseBody(errorBlock map[string]interface{}) string {
	if detail, ok := errorBlock["detail"]; ok {
		if message, ok := detail.(string); ok {
			return message
		}
	}
	var errorString string
	for k, v := range errorBlock {
		errorString = fmt.Sprintf("%sField: %s, Error:", errorString, k)
		switch value := v.(type) {
		case []interface{}:
			for _, s := range value {
				errorString = fmt.Sprintf("%s %v", errorString, s)
			}
		default:
			errorString = fmt.Sprintf("%s %v", errorString, value)
		}
		errorString = fmt.Sprintf("%s; ", errorString)
	}
	return strings.TrimSuffix(errorString, "; ")
}

// ConfirmCommand function will add a confirmation prompt to destructive
// commands, bypassed with --force
func ConfirmCommand(message string, bypass bool) error {
	errAborted := fmt.Errorf("command aborted")
	if bypass {
		return nil
	}
	response := false
	prompt := &survey.Confirm{
		Message: message,
	}
	err := survey.AskOne(prompt, &response)
	if err != nil {
		return err
	}
	if !response {
		return errAborted
	}
	return nil
}

// ReadCreateFile reads a YAML or JSON file into a generic attribute map
// for create requests
func ReadCreateFile(filePath string) (map[string]interface{}, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	attrs := map[string]interface{}{}
	// The YAML parser accepts both JSON and YAML input
	if err := yaml.Unmarshal(contents, &attrs); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", filePath, err)
	}
	return attrs, nil
}
