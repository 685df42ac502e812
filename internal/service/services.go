// Package service implements the application's business rules on top of the
// storage repositories and the excuse generator.
package service

import (
	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/internal/generator"
	"github.com/yjkwon-dev/pinggye/internal/store"
)

// Services bundles the business-layer services behind one construction
// point, mirroring how the repositories are bundled in store.Storages.
type Services struct {
	Auth    AuthService
	Excuses ExcuseService
	Usage   UsageService
}

// NewServices wires the services onto the given repositories and generator.
// warnLimit is the weekly generation count at which the usage summary starts
// carrying a warning.
func NewServices(storages *store.Storages, gen generator.Generator, warnLimit int, log *logger.Logger) *Services {
	return &Services{
		Auth:    NewAuthService(storages.Users, log),
		Excuses: NewExcuseService(storages.Excuses, storages.Usage, gen, log),
		Usage:   NewUsageService(storages.Usage, warnLimit, log),
	}
}
