package main

import (
	_ "embed"
	"strings"

	"github.com/caltechads/brigid-cli/cmd"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
)

//go:embed version.txt
var version string

func main() {
	v := strings.TrimSpace(version)
	brigidclient.SetVersion(v)
	cmd.Execute(v)
}
