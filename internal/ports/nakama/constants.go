package nakama

const (
	// RpcNewGame is the Nakama RPC id clients call to get their solitaire match.
	RpcNewGame = "solitaire_new_game"

	// MatchNameSolitaire is the authoritative match handler name registered with Nakama.
	MatchNameSolitaire = "solitaire_match"

	// MatchTickRate is how many times per second MatchLoop runs.
	MatchTickRate = 5

	// Match label keys.
	MatchLabelKey_Game  = "game"
	MatchLabelKey_Owner = "owner"

	matchLabelGame   = "solitaire"
	matchParamsOwner = "owner"
)

// Storage location of the per-user save slot.
const (
	saveCollection = "solitaire"
	saveKey        = "save_slot"
)
