package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// NewGameResponse is the payload returned to clients asking for their match.
type NewGameResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// matchModule is the part of runtime.NakamaModule the RPC uses.
type matchModule interface {
	MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error)
	MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error)
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcNewGame, rpcNewGame)
}

func rpcNewGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return newGame(ctx, logger, nk)
}

// newGame returns the caller's running solitaire match, creating one owned by
// the caller when none exists.
func newGame(ctx context.Context, logger runtime.Logger, nk matchModule) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", errors.New("rpc requires an authenticated user")
	}

	query := fmt.Sprintf("+label.%s:%s +label.%s:%q", MatchLabelKey_Game, matchLabelGame, MatchLabelKey_Owner, userID)
	limit := 1
	authoritative := true
	minSize := 0
	maxSize := 1

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("RpcNewGame [User:%s]: Failed to list matches: %v", userID, err)
		return "", err
	}

	resp := NewGameResponse{IsNew: len(matches) == 0}
	if len(matches) > 0 {
		resp.MatchID = matches[0].GetMatchId()
		logger.Info("RpcNewGame [User:%s]: Found existing match %s", userID, resp.MatchID)
	} else {
		resp.MatchID, err = nk.MatchCreate(ctx, MatchNameSolitaire, map[string]interface{}{matchParamsOwner: userID})
		if err != nil {
			logger.Error("RpcNewGame [User:%s]: Failed to create match: %v", userID, err)
			return "", err
		}
		logger.Info("RpcNewGame [User:%s]: Created new match %s", userID, resp.MatchID)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
