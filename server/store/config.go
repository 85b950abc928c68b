package store

import (
	"fmt"
)

type Source string

const (
	SourceFile     Source = "file"
	SourceDatabase Source = "database"
)

type Config struct {
	Source Source `toml:"source"`
	Path   string `toml:"path"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Source: %s\n Path: %s",
		c.Source,
		c.Path,
	)
}
