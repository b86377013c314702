package db_models

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type IncomeType string

const (
	IncomeSalary     IncomeType = "SALARY"
	IncomeBusiness   IncomeType = "BUSINESS"
	IncomeInvestment IncomeType = "INVESTMENT"
	IncomeFreelance  IncomeType = "FREELANCE"
	IncomeGift       IncomeType = "GIFT"
	IncomeOther      IncomeType = "OTHER"
)

func (t IncomeType) IsValid() bool {
	switch t {
	case IncomeSalary, IncomeBusiness, IncomeInvestment, IncomeFreelance, IncomeGift, IncomeOther:
		return true
	}
	return false
}

type SavingsPriority string

const (
	PriorityLow    SavingsPriority = "LOW"
	PriorityMedium SavingsPriority = "MEDIUM"
	PriorityHigh   SavingsPriority = "HIGH"
)

func (p SavingsPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type AlertType string

const (
	AlertInfo           AlertType = "INFO"
	AlertWarning        AlertType = "WARNING"
	AlertBudgetExceeded AlertType = "BUDGET_EXCEEDED"
	AlertGoalReached    AlertType = "GOAL_REACHED"
	AlertReminder       AlertType = "REMINDER"
)

func (t AlertType) IsValid() bool {
	switch t {
	case AlertInfo, AlertWarning, AlertBudgetExceeded, AlertGoalReached, AlertReminder:
		return true
	}
	return false
}
