package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tractor/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

type createInviteRequest struct {
	MatchID string `json:"match_id"`
}

type createInviteResponse struct {
	MatchID string `json:"match_id"`
	Token   string `json:"token"`
}

// rpcCreateInvite mints a signed token that admits the bearer to a private
// table. Requires the tractor_invite_secret runtime env var.
func rpcCreateInvite(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userId, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userId == "" {
		return "", runtime.NewError("no user session", 3)
	}

	var req createInviteRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.MatchID == "" {
		return "", runtime.NewError("match_id is required", 3)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["tractor_invite_secret"]
	if secret == "" {
		logger.Error("rpcCreateInvite: tractor_invite_secret is not configured")
		return "", runtime.NewError("invites are not enabled", 13)
	}
	issuer := env["tractor_invite_issuer"]
	if issuer == "" {
		issuer = "tractor"
	}

	token, err := app.NewInviteService(secret, issuer, time.Hour).GenerateToken(req.MatchID, userId)
	if err != nil {
		logger.Error("rpcCreateInvite [User:%s]: %v", userId, err)
		return "", runtime.NewError("failed to create invite", 13)
	}

	return marshalResponse(createInviteResponse{MatchID: req.MatchID, Token: token})
}
