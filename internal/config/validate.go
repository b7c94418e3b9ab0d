package config

import (
	"fmt"

	"github.com/resilihub/docvault/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Chunker misconfiguration is fatal here — it must never reach a running
// pipeline, where an overlap >= size would stall the cursor loop.
func (c *Config) Validate() error {
	if err := c.Chunker.Validate(); err != nil {
		return fmt.Errorf("chunker: %w", err)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database: max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo: database name must not be empty")
	}
	if c.Mongo.Collection == "" {
		return fmt.Errorf("mongo: collection name must not be empty")
	}

	return nil
}

// Validate checks the chunker settings for forward progress.
func (c ChunkerConfig) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be > 0 (got %d): %w", c.ChunkSize, domain.ErrConfiguration)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("chunk_overlap must be >= 0 (got %d): %w", c.ChunkOverlap, domain.ErrConfiguration)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk_overlap (%d) must be < chunk_size (%d): %w",
			c.ChunkOverlap, c.ChunkSize, domain.ErrConfiguration)
	}
	return nil
}
