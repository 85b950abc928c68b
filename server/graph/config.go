package graph

import (
	"fmt"
)

type Config struct {
	MaxDepth       int  `toml:"max_depth"`
	MaxParallelism int  `toml:"max_parallelism"`
	Playground     bool `toml:"playground"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n MaxDepth: %d\n MaxParallelism: %d\n Playground: %t",
		c.MaxDepth,
		c.MaxParallelism,
		c.Playground,
	)
}
