package cli

import (
	"github.com/rs/zerolog/log"

	"canetrack/internal/config"
	"canetrack/internal/infra"
	"canetrack/internal/repository"
	"canetrack/internal/service"
	"canetrack/internal/store"
)

// buildService wires the service from config. The remote repository is best
// effort: an unreachable database logs a warning and the tool runs local-only.
func buildService(cfg *config.Config) service.HarvestService {
	local := store.NewLocalStore(cfg.LocalStorePath)

	var remote repository.HarvestRepository
	if cfg.DatabaseURL != "" {
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("remote database unavailable, running local-only")
		} else {
			remote = repository.NewHarvestRepository(db)
		}
	}
	return service.NewHarvestService(local, remote)
}

// buildRemote connects to the remote database or fails loudly. Used by the
// db subcommands, where "unreachable" is the answer being asked for.
func buildRemote(cfg *config.Config) (repository.HarvestRepository, error) {
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return repository.NewHarvestRepository(db), nil
}
