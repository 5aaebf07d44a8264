package main

import (
	"log"
	"os"

	"github.com/ytget/quicktext/internal/app"
	"github.com/ytget/quicktext/internal/cli"
	"github.com/ytget/quicktext/internal/config"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	opts := cli.Options{
		Version:    version,
		ConfigDirs: configDirs(),
		RunGUI: func(o config.Overrides) error {
			return app.Run(app.Options{Version: version, Overrides: o})
		},
	}

	if err := cli.New(opts).Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

// configDirs lists where .quicktext.yaml is looked up
func configDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
