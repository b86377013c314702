package request_models

import (
	"budgy/internal/models/db_models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts are pointers so that a missing amount can be told apart from zero.
// Any "id" field in a body is ignored; updates take the id from the path.

type ExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
	Description string           `json:"description"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	UserID      uuid.UUID        `json:"user_id"`
}

type IncomeRequest struct {
	Amount      *decimal.Decimal     `json:"amount" swaggertype:"string" example:"2500.00"`
	Source      string               `json:"source"`
	IncomeType  db_models.IncomeType `json:"income_type"`
	Description string               `json:"description"`
	UserID      uuid.UUID            `json:"user_id"`
}

type SavingsRequest struct {
	Name          string                    `json:"name"`
	TargetAmount  *decimal.Decimal          `json:"target_amount" swaggertype:"string" example:"5000.00"`
	CurrentAmount *decimal.Decimal          `json:"current_amount" swaggertype:"string" example:"250.00"`
	TargetDate    string                    `json:"target_date" example:"2026-12-31"`
	Priority      db_models.SavingsPriority `json:"priority"`
	Description   string                    `json:"description"`
	UserID        uuid.UUID                 `json:"user_id"`
}

type AlertRequest struct {
	Title   string              `json:"title"`
	Message string              `json:"message"`
	Type    db_models.AlertType `json:"alert_type"`
	IsRead  bool                `json:"is_read"`
	UserID  uuid.UUID           `json:"user_id"`
}
