package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Expense struct {
	BaseModel
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(19,2);not null"`
	Description string          `json:"description,omitempty" gorm:"size:255"`
	// CategoryID is nil when the expense is uncategorised or its category was removed.
	CategoryID *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
}

func (Expense) TableName() string {
	return "expenses"
}
