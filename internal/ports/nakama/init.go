package nakama

import (
	"context"
	"database/sql"

	"klondike/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs and match handlers for Nakama runtime. Configuration
// comes from the solitaire_* keys of the runtime env.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromRuntimeEnv(env)
	if err != nil {
		logger.Error("InitModule: Invalid solitaire config: %v", err)
		return err
	}

	handler, err := newMatchHandler(*cfg)
	if err != nil {
		logger.Error("InitModule: Failed to prepare match handler: %v", err)
		return err
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameSolitaire, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return handler, nil
	}); err != nil {
		return err
	}

	logger.Info("Solitaire Go module loaded (save backend %s, %d redeals, %ds budget).", cfg.SaveBackend, cfg.DeckPassesAllowed, cfg.TimeBudgetSeconds)
	return nil
}
