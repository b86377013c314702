package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Savings is a goal, not a transaction: CurrentAmount tracks progress toward
// TargetAmount and may exceed it.
type Savings struct {
	BaseModel
	Name          string          `json:"name" gorm:"size:255;not null"`
	TargetAmount  decimal.Decimal `json:"target_amount" gorm:"type:numeric(19,2);not null"`
	CurrentAmount decimal.Decimal `json:"current_amount" gorm:"type:numeric(19,2);not null"`
	TargetDate    time.Time       `json:"target_date" gorm:"type:date;not null;index"`
	Priority      SavingsPriority `json:"priority" gorm:"size:10;not null;index"`
	Description   string          `json:"description" gorm:"type:text;not null"`
	UserID        uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
}

func (Savings) TableName() string {
	return "savings"
}

// Progress is CurrentAmount/TargetAmount rounded to four places.
func (s Savings) Progress() decimal.Decimal {
	if !s.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return s.CurrentAmount.DivRound(s.TargetAmount, 4)
}

func (s Savings) Reached() bool {
	return s.TargetAmount.IsPositive() && s.CurrentAmount.GreaterThanOrEqual(s.TargetAmount)
}
