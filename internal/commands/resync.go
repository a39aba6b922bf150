package commands

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/homeledger/backend/internal/clock"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

type resyncCmd struct {
	envFile string
}

func (*resyncCmd) Name() string     { return "resync" }
func (*resyncCmd) Synopsis() string { return "recompute the computed expenses of all months" }
func (*resyncCmd) Usage() string {
	return `resync [-env <file>]

  Recomputes tithe, total investments and total misc expenses of every
  month. Tithe rows are only created for months with income.
`
}

func (r *resyncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.envFile, "env", "", "Read environment variables from this file instead of .env")
}

func (r *resyncCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cfg, err := setup(envFiles(r.envFile)...)
	if err != nil {
		log.Error().Err(err).Msg("Startup failed")
		return subcommands.ExitFailure
	}
	defer closeDB()

	count, err := ledger.New(models.DB, clock.System{Location: cfg.Timezone}).Resync(ctx)
	if err != nil {
		log.Error().Err(err).Int("months", count).Msg("Resync failed")
		return subcommands.ExitFailure
	}

	log.Info().Int("months", count).Msg("Resync complete")
	return subcommands.ExitSuccess
}
