package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Chunker  ChunkerConfig  `yaml:"chunker"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings (chunk store).
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// MongoConfig holds MongoDB connection settings (content store).
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"             env-required:"true"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"docvault"`
	Collection     string        `yaml:"collection"      env:"MONGO_COLLECTION"      env-default:"documents"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// ChunkerConfig holds text segmentation settings.
type ChunkerConfig struct {
	// ChunkSize is the target maximum characters per chunk.
	ChunkSize int `yaml:"chunk_size"    env:"CHUNKER_CHUNK_SIZE"    env-default:"1000"`
	// ChunkOverlap is carried from the end of one chunk into the start of
	// the next. Must be strictly less than ChunkSize.
	ChunkOverlap int `yaml:"chunk_overlap" env:"CHUNKER_CHUNK_OVERLAP" env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
