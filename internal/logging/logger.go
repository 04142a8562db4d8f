package logging

import "go.uber.org/zap"

// New builds the application logger: human-readable in dev mode,
// JSON production config otherwise.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
