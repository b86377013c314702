package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Income struct {
	BaseModel
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(19,2);not null"`
	Source      string          `json:"source" gorm:"size:255;not null"`
	IncomeType  IncomeType      `json:"income_type" gorm:"size:20;not null;index"`
	Description string          `json:"description" gorm:"type:text;not null"`
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
}

func (Income) TableName() string {
	return "incomes"
}
