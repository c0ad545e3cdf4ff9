package api

import (
	"github.com/AnotherFoxGuy/mofilereader/pkg/catalog"
	"github.com/AnotherFoxGuy/mofilereader/pkg/codec"
)

// APIResponse represents a standard API response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Bind        string
	Port        int
	APIKey      string // Optional; when empty the API is unauthenticated
	CatalogPath string // Source for the reload endpoint
}

// Catalog defines the reader operations the API surface depends on.
type Catalog interface {
	Lookup(id string) string
	LookupWithContext(context, id string) string
	Count() int
	Entries() []catalog.Entry
	Header() *codec.Header
	Open(path string) error
	LastError() string
}

// LookupResponse is the payload of the lookup endpoint.
type LookupResponse struct {
	MsgID       string `json:"msgid"`
	Context     string `json:"context,omitempty"`
	Translation string `json:"translation"`
}

// InfoResponse summarizes the loaded catalog.
type InfoResponse struct {
	Entries     int           `json:"entries"`
	Flat        int           `json:"flat_entries"`
	Contextual  int           `json:"contextual_entries"`
	Contexts    int           `json:"contexts"`
	Header      *codec.Header `json:"header,omitempty"`
	CatalogPath string        `json:"catalog_path,omitempty"`
}

// ReloadResponse is the payload of the reload endpoint.
type ReloadResponse struct {
	CatalogPath string `json:"catalog_path"`
	Entries     int    `json:"entries"`
}
