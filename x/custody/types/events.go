package types

// Event types for the custody module
const (
	EventTypeFundsReceived  = "funds_received"
	EventTypeFundsSent      = "funds_sent"
	EventTypeBatchFundsSent = "batch_funds_sent"
	EventTypeFundsWithdrawn = "funds_withdrawn"

	AttributeKeyDepositor  = "depositor"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyOwner      = "owner"
	AttributeKeyAmount     = "amount"
	AttributeKeyRecipients = "recipients"
	AttributeKeyBalance    = "balance"
)
