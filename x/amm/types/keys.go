package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes. The pool is a singleton, so its fields live under
// individual value keys rather than a serialized record.
var (
	ReserveBaseKey         = []byte{0x01} // base-asset reserve (18 dp units)
	ReserveQuoteKey        = []byte{0x02} // quote-asset reserve (6 dp units)
	InvariantKey           = []byte{0x03} // k0 fixed at initialization
	InitializedKey         = []byte{0x04} // set once the pool is live
	ParamsKey              = []byte{0x05} // module parameters
	ReentrancyLockKeyPrefix = []byte{0x06} // prefix for settlement locks
)

// ReentrancyLockKey returns the store key for a settlement lock
func ReentrancyLockKey(operation string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(operation)...)
}

// LockTrade guards buy and sell settlement. Both directions share one lock
// because they mutate the same reserve pair.
const LockTrade = "trade"
