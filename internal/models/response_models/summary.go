package response_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LedgerSummary struct {
	UserID        uuid.UUID       `json:"user_id"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetBalance    decimal.Decimal `json:"net_balance"`
	Savings       SavingsSummary  `json:"savings"`
	UnreadAlerts  int64           `json:"unread_alerts"`
	Monthly       []MonthlyPoint  `json:"monthly"`
}

type SavingsSummary struct {
	Goals           int             `json:"goals"`
	GoalsReached    int             `json:"goals_reached"`
	TotalTarget     decimal.Decimal `json:"total_target"`
	TotalCurrent    decimal.Decimal `json:"total_current"`
	OverallProgress decimal.Decimal `json:"overall_progress"`
}

// MonthlyPoint is one calendar month of ledger activity.
type MonthlyPoint struct {
	Month    time.Time       `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
