package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an open table.
	RpcQuickMatch = "quick_match"

	// RpcCreateInvite is the Nakama RPC id for minting invite tokens to private tables.
	RpcCreateInvite = "create_invite"

	// MatchNameTractor is the authoritative match handler name registered with Nakama.
	MatchNameTractor = "tractor_match"

	// MatchLabelKey_OpenSeats is the label key carrying the open seat count.
	MatchLabelKey_OpenSeats = "open"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpDeclare   int64 = 1
	OpSetBottom int64 = 2
	OpPlayCards int64 = 3
	OpSuggest   int64 = 4

	// Server -> Client events
	OpMatchState     int64 = 101
	OpRoundStarted   int64 = 102
	OpCardDealt      int64 = 103
	OpDealFinished   int64 = 104
	OpPlayerDeclared int64 = 105
	OpTrumpFinalized int64 = 106
	OpBottomGiven    int64 = 107
	OpBottomSet      int64 = 108
	OpPlayStarted    int64 = 109
	OpPlayerPlayed   int64 = 110
	OpTrickEnded     int64 = 111
	OpRoundEnded     int64 = 112
	OpPlayerView     int64 = 113
	OpSuggestion     int64 = 114
	OpGameError      int64 = 115
)
