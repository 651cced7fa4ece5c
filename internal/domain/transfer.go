package domain

import "math/big"

// TransferEvent is a decoded Transfer log record.
type TransferEvent struct {
	Hour  string   // hour key "YYYY-MM-DD HH:00:00" in the timestamp's own offset
	From  string   // sender address, lowercased hex
	To    string   // recipient address, lowercased hex
	Value *big.Int // token amount; amounts scaled by 1e18 exceed 64-bit range
}
