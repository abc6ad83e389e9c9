package devserver

import (
	"time"

	"github.com/dmitrijs2005/profiledash/internal/client/models"
	"github.com/dmitrijs2005/profiledash/internal/timex"
)

// DemoPassword signs in the DemoAccount.
const DemoPassword = "demo"

// DemoAccount is a module student with a few finished projects, piscine
// history, and audit activity on both sides.
func DemoAccount() Account {
	start := time.Date(2024, time.September, 2, 9, 0, 0, 0, time.UTC)
	at := func(days int) timex.Timestamp {
		return timex.Timestamp{Time: start.AddDate(0, 0, days)}
	}
	grade := func(g float64) *float64 { return &g }

	return Account{
		Password: DemoPassword,
		Profile: models.UserProfile{
			ID:         1,
			Login:      "demo",
			FirstName:  "Demo",
			LastName:   "Student",
			Email:      "demo@example.com",
			AuditRatio: 1.25,
			TotalUp:    1500000,
			TotalDown:  1200000,
			Transactions: []models.Transaction{
				{ID: 1, Type: models.TransactionXP, Amount: 700, CreatedAt: at(0), Path: "/bahrain/piscine-go/checkpoint", ObjectID: 100},
				{ID: 2, Type: models.TransactionXP, Amount: 40000, CreatedAt: at(30), Path: "/bahrain/bh-module/project-ascii-art", ObjectID: 101},
				{ID: 3, Type: models.TransactionXP, Amount: 12000, CreatedAt: at(45), Path: "/bahrain/bh-module/project-go-reloaded", ObjectID: 102},
				{ID: 4, Type: models.TransactionUp, Amount: 9999, CreatedAt: at(46), Path: "/bahrain/bh-module/project-go-reloaded", ObjectID: 102},
				{ID: 5, Type: models.TransactionXP, Amount: 8000, CreatedAt: at(50), Path: "/bahrain/bh-module/project-ascii-art", ObjectID: 101},
				{ID: 6, Type: models.TransactionXP, Amount: -500, CreatedAt: at(51), Path: "/bahrain/bh-module/project-go-reloaded", ObjectID: 102},
				{ID: 7, Type: models.TransactionXP, Amount: 5000, CreatedAt: at(60), Path: "/bahrain/bh-module/piscine-js/quest-01", ObjectID: 103},
				{ID: 8, Type: models.TransactionXP, Amount: 3000, CreatedAt: at(75), Path: "/bahrain/bh-module/piscine-rust/quest-01", ObjectID: 104},
				{ID: 9, Type: models.TransactionXP, Amount: 2500, CreatedAt: at(90), Path: "/bahrain/bh-module/project-groupie-tracker", ObjectID: 105},
				{ID: 10, Type: models.TransactionDown, Amount: 4200, CreatedAt: at(91), Path: "/bahrain/bh-module/project-groupie-tracker", ObjectID: 105},
			},
			Results: []models.Result{
				{ID: 1, Grade: grade(1), CreatedAt: at(30), Path: "/bahrain/bh-module/project-ascii-art"},
				{ID: 2, Grade: grade(0), CreatedAt: at(44), Path: "/bahrain/bh-module/project-go-reloaded"},
				{ID: 3, Grade: grade(1.2), CreatedAt: at(45), Path: "/bahrain/bh-module/project-go-reloaded"},
				{ID: 4, Grade: grade(1), CreatedAt: at(90), Path: "/bahrain/bh-module/project-groupie-tracker"},
			},
		},
	}
}
