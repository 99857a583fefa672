package types

const (
	// ModuleName defines the module name
	ModuleName = "custody"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes.
var (
	// HeldBalanceKey tracks the quote amount the module account holds on
	// behalf of depositors. Kept alongside the ledger balance so custody
	// accounting survives even if other modules share the ledger.
	HeldBalanceKey = []byte{0x01}
)
