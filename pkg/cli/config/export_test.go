package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID, databaseID string) *Repository {
	return &Repository{
		backend:    backend,
		projectID:  projectID,
		databaseID: databaseID,
	}
}

// NewAuthnForTest creates an Authn config for testing purposes
func NewAuthnForTest(jwksURL, jwtIssuer, jwtSecret, noAuthUID string) *Authn {
	return &Authn{
		jwksURL:   jwksURL,
		jwtIssuer: jwtIssuer,
		jwtSecret: jwtSecret,
		noAuthUID: noAuthUID,
	}
}

// NewUpstreamForTest creates an Upstream config for testing purposes
func NewUpstreamForTest(similarityURL, suggestionURL, promptFile string) *Upstream {
	return &Upstream{
		similarityURL: similarityURL,
		suggestionURL: suggestionURL,
		promptFile:    promptFile,
	}
}

// LoadPromptTemplate exposes prompt file loading for tests
func (u *Upstream) LoadPromptTemplate() (string, error) {
	return u.loadPromptTemplate()
}
