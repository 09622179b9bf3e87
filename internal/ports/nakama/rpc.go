package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tractor/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchRequest is the optional payload for the quick match RPC.
type QuickMatchRequest struct {
	// Players is the desired table size; zero means the server default.
	Players int `json:"players"`
	// Private creates a fresh invite-only table instead of joining a lobby.
	Private bool `json:"private"`
}

type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers the table-finding and invite RPCs.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcCreateInvite, rpcCreateInvite)
}

// rpcQuickMatch finds a lobby with open seats or creates a new table. A
// private request always creates.
func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userId, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req QuickMatchRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("invalid payload", 3)
		}
	}
	if req.Players != 0 {
		if _, ok := domain.BottomSizeForPlayers(req.Players); !ok {
			return "", runtime.NewError("unsupported player count", 3)
		}
	}

	if !req.Private {
		// label.open filters on the "open" key of the JSON label;
		// :>=1 keeps only tables with at least one free seat.
		limit := 1
		authoritative := true
		labelQuery := fmt.Sprintf("+label.%s:>=1 +label.game:tractor +label.state:lobby", MatchLabelKey_OpenSeats)

		matches, err := nk.MatchList(ctx, limit, authoritative, "", nil, nil, labelQuery)
		if err != nil {
			logger.Error("rpcQuickMatch [User:%s]: failed to list matches: %v", userId, err)
			return "", runtime.NewError("failed to list matches", 13)
		}
		if len(matches) > 0 {
			matchId := matches[0].MatchId
			logger.Info("rpcQuickMatch [User:%s]: found existing match %s", userId, matchId)
			return marshalResponse(QuickMatchResponse{MatchID: matchId})
		}
	}

	params := map[string]interface{}{
		"players": req.Players,
		"private": req.Private,
	}
	matchId, err := nk.MatchCreate(ctx, MatchNameTractor, params)
	if err != nil {
		logger.Error("rpcQuickMatch [User:%s]: failed to create match: %v", userId, err)
		return "", runtime.NewError("failed to create match", 13)
	}

	logger.Info("rpcQuickMatch [User:%s]: created new match %s (private=%t)", userId, matchId, req.Private)
	return marshalResponse(QuickMatchResponse{MatchID: matchId, IsNew: true})
}

func marshalResponse(v interface{}) (string, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return "", runtime.NewError("failed to marshal response", 13)
	}
	return string(bytes), nil
}
