// Package models defines the profile data returned by the GraphQL backend.
package models

import "github.com/dmitrijs2005/profiledash/internal/timex"

// UserProfile is the user_by_pk row together with its transactions and
// graded results. It is fetched whole on every load and never cached.
type UserProfile struct {
	ID         int     `json:"id"`
	Login      string  `json:"login"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	AuditRatio float64 `json:"auditRatio"` // server-computed
	TotalUp    float64 `json:"totalUp"`
	TotalDown  float64 `json:"totalDown"`

	Transactions []Transaction `json:"transactions"`
	Results      []Result      `json:"results"`
}

// Transaction is one ledger row. Type is "xp", "up", "down", "level" and so
// on; only "xp" rows feed the XP metrics.
type Transaction struct {
	ID        int             `json:"id"`
	Type      string          `json:"type"`
	Amount    int64           `json:"amount"`
	CreatedAt timex.Timestamp `json:"createdAt"`
	Path      string          `json:"path"`
	ObjectID  int             `json:"objectId"`
}

// Result is a graded attempt. The server filters out null grades, so Grade
// is nil only for hand-built values.
type Result struct {
	ID        int             `json:"id"`
	Grade     *float64        `json:"grade"`
	CreatedAt timex.Timestamp `json:"createdAt"`
	Path      string          `json:"path"`
}

// TransactionType values the metrics care about.
const (
	TransactionXP   = "xp"
	TransactionUp   = "up"
	TransactionDown = "down"
)
