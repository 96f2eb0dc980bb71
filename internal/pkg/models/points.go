package models

// PointsAccount holds a per-subject integer balance. The balance is the sum
// of all historical deltas; negative balances are not clamped.
type PointsAccount struct {
	UserID  string `json:"user_id" db:"user_id"`
	Balance int64  `json:"balance" db:"balance"`
}
