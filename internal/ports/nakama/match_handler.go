package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"tractor/internal/app"
	"tractor/internal/bot"
	"tractor/internal/config"
	"tractor/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/mitchellh/mapstructure"
)

// roundStartDelayTicks is the pause between a full table (or a finished
// round) and the next deal.
const roundStartDelayTicks = 3

// matchParams are the creation parameters for a match, decoded from the
// MatchCreate params map.
type matchParams struct {
	Players int  `mapstructure:"players"`
	Private bool `mapstructure:"private"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler.
type MatchState struct {
	Seats     []string                    `json:"seats"` // user IDs, empty string means the seat is open
	OwnerSeat int                         `json:"owner_seat"`
	Private   bool                        `json:"private"`
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *app.Game                   `json:"-"`
	Invites   *app.InviteService          `json:"-"`
	Advisor   app.Advisor                 `json:"-"` // brain answering human suggestion requests
	Bots      map[string]*bot.Agent       `json:"-"`

	BotsEnabled          bool  `json:"bots_enabled"`
	BotPlayDelay         int   `json:"bot_play_delay"`
	BotAutoFillDelay     int   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64 `json:"bot_wait_until"`
	LastSinglePlayerTick int64 `json:"last_single_player_tick"`
	RoundStartAt         int64 `json:"round_start_at"` // tick of the next automatic deal, 0 when unscheduled

	rng *rand.Rand
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// seatOf returns the seat index occupied by the user, or -1.
func (ms *MatchState) seatOf(userId string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userId {
			return i
		}
	}
	return -1
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1
// if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

// matchLabel is the queryable match listing entry.
type matchLabel struct {
	Open    int    `json:"open"`
	Game    string `json:"game"`
	State   string `json:"state"`
	Players int    `json:"players"`
	Private bool   `json:"private"`
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: could not load game config: %v", err)
	}

	var p matchParams
	if err := mapstructure.WeakDecode(params, &p); err != nil {
		logger.Warn("MatchInit: bad match params: %v", err)
	}
	numPlayers := config.Players(app.DefaultPlayers)
	if _, ok := domain.BottomSizeForPlayers(p.Players); ok {
		numPlayers = p.Players
	}

	fixture, err := config.LoadFixtureDeck()
	if err != nil {
		logger.Warn("MatchInit: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	svc := app.NewService(rng, app.Config{
		DealInterval:  config.DealInterval(),
		DeclareWindow: config.DeclareWindow(),
		FixtureDeck:   fixture,
	})
	game, err := svc.NewGame(numPlayers)
	if err != nil {
		logger.Error("MatchInit: %v", err)
		return nil, 0, ""
	}

	state := &MatchState{
		Seats:            make([]string, numPlayers),
		OwnerSeat:        -1,
		Private:          p.Private,
		Tick:             time.Now().Unix(),
		Presences:        make(map[string]runtime.Presence),
		App:              svc,
		Game:             game,
		Advisor:          bot.NewPickerBot(rng, false),
		Bots:             make(map[string]*bot.Agent),
		BotsEnabled:      true,
		BotPlayDelay:     config.BotPlayDelay(),
		BotAutoFillDelay: config.BotAutoFillDelay(),
		rng:              rng,
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["tractor_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["tractor_bot_play_delay_ticks"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotPlayDelay = i
		}
	}
	if val, ok := env["tractor_bot_auto_fill_delay_ticks"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}
	if secret := env["tractor_invite_secret"]; secret != "" {
		issuer := env["tractor_invite_issuer"]
		if issuer == "" {
			issuer = "tractor"
		}
		state.Invites = app.NewInviteService(secret, issuer, time.Hour)
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	labelBytes, err := json.Marshal(mh.labelFor(state))
	if err != nil {
		logger.Error("MatchInit: failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if matchState.Private && matchState.Invites != nil {
		matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
		tokenMatch, err := matchState.Invites.MatchIDFromToken(metadata["invite_token"])
		if err != nil || tokenMatch != matchID {
			return state, false, "invite required"
		}
	}

	// Allow join if there is an empty seat or a bot to replace between rounds.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game.Phase == app.PhaseScore {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		// Assign a seat: empty seats first, then bots between rounds.
		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && matchState.Game.Phase == app.PhaseScore {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: user %s joined but no seat was available.", p.GetUserId())
		}
	}

	// The owner seat always belongs to a human.
	if !isHumanSeat(matchState.Seats, matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	// Joiners mid-round get a snapshot of what their seat may see.
	if matchState.Game.Round != nil {
		mh.dispatchEvents(matchState, dispatcher, logger, matchState.App.Snapshots(matchState.Game))
	}

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		for i, seatUserId := range matchState.Seats {
			if seatUserId == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: user %s left, seat %d freed.", p.GetUserId(), i)
				break
			}
		}
	}

	if newOwnerSeat := findFirstHumanSeat(matchState.Seats); newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
	}

	if shouldTerminateNoHumans(matchState.Seats) {
		logger.Info("MatchLeave: terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpDeclare:
			mh.handleDeclare(matchState, dispatcher, logger, msg)
		case OpSetBottom:
			mh.handleSetBottom(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case OpSuggest:
			mh.handleSuggest(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	mh.advanceRound(matchState, dispatcher, logger)

	return matchState
}

// advanceRound drives time-based round progress: the paced deal, the
// declaration window and the automatic start of the next round once the
// table is full.
func (mh *matchHandler) advanceRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game.Phase == app.PhaseRound {
		state.RoundStartAt = 0
		events, err := state.App.Advance(state.Game)
		if err != nil {
			logger.Error("advanceRound: %v", err)
			return
		}
		mh.dispatchEvents(state, dispatcher, logger, events)
		return
	}

	// Score phase: schedule the next deal once every seat is taken.
	if state.GetOpenSeatsCount() > 0 || state.GetHumanPlayerCount() == 0 {
		state.RoundStartAt = 0
		return
	}
	if state.RoundStartAt == 0 {
		state.RoundStartAt = state.Tick + roundStartDelayTicks
		return
	}
	if state.Tick < state.RoundStartAt {
		return
	}
	state.RoundStartAt = 0
	events, err := state.App.StartRound(state.Game)
	if err != nil {
		logger.Error("advanceRound: failed to start round: %v", err)
		return
	}
	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Fill open seats with bots once humans have waited long enough.
	if state.Game.Phase == app.PhaseScore && state.GetOpenSeatsCount() > 0 {
		if state.GetHumanPlayerCount() >= 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetBotIdentity(i)
					brain, err := bot.NewBrain(identity.Difficulty, state.rng)
					if err != nil {
						logger.Error("processBots: failed to create brain for %s: %v", identity.UserID, err)
						continue
					}
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = &bot.Agent{
						ID:       identity.UserID,
						Name:     identity.DisplayName,
						Strategy: brain,
					}
					logger.Info("processBots: added bot %s (%s) to seat %d", identity.Username, identity.UserID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastMatchState(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
	}

	// 2. Bot turns in-round: bury the bottom, play on turn.
	if state.Game.Phase != app.PhaseRound || state.Game.Round == nil {
		state.BotWaitUntil = 0
		return
	}
	r := state.Game.Round

	var actorSeat int
	switch r.Status() {
	case domain.StatusBottom:
		actorSeat = r.BottomPlayer()
	case domain.StatusPlaying:
		actorSeat = r.Turn()
	default:
		state.BotWaitUntil = 0
		return
	}

	actorID := state.Seats[actorSeat]
	if !isBotUserId(actorID) {
		state.BotWaitUntil = 0
		return
	}
	if state.BotWaitUntil == 0 {
		state.BotWaitUntil = state.Tick + int64(state.BotPlayDelay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[actorID]
	if !exists {
		brain, err := bot.NewBrain("", state.rng)
		if err != nil {
			logger.Error("processBots: failed to create fallback agent: %v", err)
			return
		}
		agent = &bot.Agent{ID: actorID, Strategy: brain}
		state.Bots[actorID] = agent
	}

	var events []app.Event
	var err error
	if r.Status() == domain.StatusBottom {
		var cards []domain.Card
		cards, err = agent.BottomAtSeat(r, actorSeat)
		if err == nil {
			events, err = state.App.SetBottom(state.Game, actorSeat, cards)
		}
	} else {
		var cards []domain.Card
		cards, err = agent.PlayAtSeat(r, actorSeat)
		if err == nil {
			events, err = state.App.Play(state.Game, actorSeat, cards)
		}
	}
	if err != nil {
		logger.Error("processBots: bot %s (seat %d) failed to act: %v", actorID, actorSeat, err)
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
	if state.Game.Phase == app.PhaseScore {
		mh.updateLabel(state, dispatcher, logger)
	}
}

func (mh *matchHandler) handleDeclare(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, cards, ok := mh.decodeCardsMessage(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	events, err := state.App.Declare(state.Game, seat, cards)
	if err != nil {
		logger.Warn("handleDeclare: user %s (seat %d): %v", msg.GetUserId(), seat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleSetBottom(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, cards, ok := mh.decodeCardsMessage(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	events, err := state.App.SetBottom(state.Game, seat, cards)
	if err != nil {
		logger.Warn("handleSetBottom: user %s (seat %d): %v", msg.GetUserId(), seat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, cards, ok := mh.decodeCardsMessage(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	events, err := state.App.Play(state.Game, seat, cards)
	if err != nil {
		logger.Warn("handlePlayCards: user %s (seat %d): %v", msg.GetUserId(), seat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
	if state.Game.Phase == app.PhaseScore {
		mh.updateLabel(state, dispatcher, logger)
	}
}

// handleSuggest answers a human's hint request for their current decision,
// either the cards to bury or the cards to play.
func (mh *matchHandler) handleSuggest(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := state.seatOf(msg.GetUserId())
	if seat < 0 || state.Game.Round == nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "no active round")
		return
	}

	var kind string
	var cards []domain.Card
	var err error
	if state.Game.Round.Status() == domain.StatusBottom {
		kind = "bottom"
		cards, err = state.App.SuggestBottom(state.Game, state.Advisor, seat)
	} else {
		kind = "play"
		cards, err = state.App.SuggestPlay(state.Game, state.Advisor, seat)
	}
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}

	mh.sendToUser(state, dispatcher, logger, msg.GetUserId(), OpSuggestion, suggestionDTO{
		Kind:  kind,
		Cards: cardsToDTO(cards),
	})
}

// decodeCardsMessage resolves the sender's seat and parses the card list
// shared by the declare, bottom and play messages.
func (mh *matchHandler) decodeCardsMessage(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) (int, []domain.Card, bool) {
	seat := state.seatOf(msg.GetUserId())
	if seat < 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 403, "not seated")
		return 0, nil, false
	}
	var req cardsRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("decodeCardsMessage: invalid payload from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "invalid payload")
		return 0, nil, false
	}
	cards, err := cardsFromDTO(req.Cards)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return 0, nil, false
	}
	return seat, cards, true
}

// dispatchEvents converts app events to wire messages. Events without
// recipients broadcast to the table; targeted events reach only the
// presences seated there, and are dropped entirely when every recipient is a
// bot or disconnected.
func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, payload, err := eventToMessage(ev)
		if err != nil {
			logger.Error("dispatchEvents: %v", err)
			continue
		}
		bytes, err := json.Marshal(payload)
		if err != nil {
			logger.Error("dispatchEvents: failed to marshal %v: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, seat := range ev.Recipients {
				if seat < 0 || seat >= len(state.Seats) {
					continue
				}
				if p, ok := state.Presences[state.Seats[seat]]; ok {
					recipients = append(recipients, p)
				}
			}
			if len(recipients) == 0 {
				continue
			}
		}

		if err := dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true); err != nil {
			logger.Error("dispatchEvents: broadcast failed: %v", err)
		}
	}
}

func (mh *matchHandler) sendToUser(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, opCode int64, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("sendToUser: failed to marshal: %v", err)
		return
	}
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendToUser: presence %s not found", userID)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, bytes, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("sendToUser: broadcast failed: %v", err)
	}
}

// sendError sends a gameErrorDTO to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	mh.sendToUser(state, dispatcher, logger, userID, OpGameError, gameErrorDTO{Code: code, Message: message})
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []seatStateDTO
	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}
		displayName := userId
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		} else if identity, ok := bot.GetBotConfig(userId); ok {
			displayName = identity.DisplayName
		}
		players = append(players, seatStateDTO{
			UserID:      userId,
			Seat:        i,
			DisplayName: displayName,
			IsBot:       isBotUserId(userId),
			Level:       state.Game.Levels[i].String(),
		})
	}

	snapshot := matchStateDTO{
		Seats:     append([]string(nil), state.Seats...),
		OwnerSeat: state.OwnerSeat,
		Open:      state.GetOpenSeatsCount(),
		Phase:     string(state.Game.Phase),
		Players:   players,
	}
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastMatchState: failed to marshal: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true)
}

func (mh *matchHandler) labelFor(state *MatchState) matchLabel {
	// Private tables never advertise as open lobbies, so the quick match
	// query skips them.
	phase := "lobby"
	if state.Private {
		phase = "private"
	}
	if state.Game.Phase == app.PhaseRound {
		phase = "playing"
	}
	return matchLabel{
		Open:    state.GetOpenSeatsCount(),
		Game:    "tractor",
		State:   phase,
		Players: state.Game.NumPlayers,
		Private: state.Private,
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(mh.labelFor(state))
	if err != nil {
		logger.Error("updateLabel: failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
