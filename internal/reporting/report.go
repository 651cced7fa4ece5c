package reporting

import "math/big"

// Report is the hourly liquidity breakdown for one tracked contract.
// Rows are strictly increasing in hour key; hours with no Transfer
// activity are omitted, never zero-filled.
type Report struct {
	ContractAddress string
	Rows            []HourRow
	Total           *big.Int // cumulative liquidity after the last row
}

// HourRow is one hour of net Transfer activity.
// Cumulative equals the sum of NetChange over this and all earlier rows.
type HourRow struct {
	Hour       string // "YYYY-MM-DD HH:00:00"
	NetChange  *big.Int
	Cumulative *big.Int
}
