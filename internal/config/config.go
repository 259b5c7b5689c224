package config

import (
	"os"
	"strings"
)

type CatalogSource string

const (
	// SourceMemory serves the built-in demo catalog from process memory.
	SourceMemory CatalogSource = "memory"
	// SourceDB serves the catalog from sqlite/postgres, seeding on first run.
	SourceDB CatalogSource = "db"
)

type Config struct {
	HTTPAddr string
	LogLevel string

	CatalogSource CatalogSource

	DBDriver string
	DBDSN    string

	BlobDriver   string // fs|memory
	BlobBasePath string // for fs

	CORSOrigins []string
}

func FromEnv() Config {
	src := CatalogSource(envOr("CATALOG_SOURCE", string(SourceDB)))
	if src != SourceMemory && src != SourceDB {
		src = SourceDB
	}
	return Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		CatalogSource: src,
		DBDriver:      envOr("DB_DRIVER", "sqlite"),
		DBDSN:         envOr("DB_DSN", ""),
		BlobDriver:    envOr("BLOB_DRIVER", "fs"),
		BlobBasePath:  envOr("BLOB_BASE_PATH", "./data"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
