package api

// ServerStarter launches the API server for a catalog.
type ServerStarter interface {
	StartServer(catalog Catalog, config ServerConfig) error
}

// ServerFactory creates server starters.
type ServerFactory interface {
	CreateServerStarter() ServerStarter
}

// DefaultServerFactory is the default implementation of ServerFactory.
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory.
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter.
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter.
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration.
func (s *DefaultServerStarter) StartServer(catalog Catalog, config ServerConfig) error {
	return StartServer(catalog, config)
}
