package db_models

type ExpenseCategory struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Icon string `json:"icon" gorm:"size:50;not null"`
}

func (ExpenseCategory) TableName() string {
	return "expense_categories"
}
