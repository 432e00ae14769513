package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a table against the AI.
	RpcQuickMatch = "quick_match"
	// RpcGetStats returns the caller's statistics.
	RpcGetStats = "get_stats"

	// MatchNameSchnapsen is the authoritative match handler name registered with Nakama.
	MatchNameSchnapsen = "schnapsen_match"

	// MatchTickRate is the number of MatchLoop calls per second.
	MatchTickRate = 5

	// RejoinGraceSec is how long a match waits for a disconnected player.
	RejoinGraceSec = 60
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpPlayCard   int64 = 1
	OpCloseStock int64 = 2
	OpChangeJack int64 = 3
	OpNextDeal   int64 = 4

	// Server -> Client events
	OpTableState  int64 = 100 // send privately
	OpDealStarted int64 = 101
	OpCardPlayed  int64 = 102
	OpTrickTaken  int64 = 103
	OpCardsDrawn  int64 = 104
	OpMarriage    int64 = 105
	OpStockClosed int64 = 106
	OpJackChanged int64 = 107
	OpNotice      int64 = 108
	OpGameEnded   int64 = 109
	OpMatchEnded  int64 = 110
	OpError       int64 = 111
)
