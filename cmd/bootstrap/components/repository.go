package components

import (
	"shareit/internal/infra/uow"

	"go.uber.org/fx"
)

// Repositories are created per transaction by the unit of work, so it is the
// only write-side dependency the container provides.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
