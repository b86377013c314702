package db_models

import "time"

// User owns expenses, incomes, savings goals and alerts through their user_id
// columns; those are fetched on demand, never preloaded here.
type User struct {
	BaseModel
	FirstName string     `json:"first_name" gorm:"size:100;not null"`
	LastName  string     `json:"last_name" gorm:"size:100;not null"`
	Email     string     `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Gender    Gender     `json:"gender" gorm:"size:10;not null"`
	Dob       *time.Time `json:"dob,omitempty" gorm:"type:date;column:date_of_birth"`
	Image     string     `json:"image,omitempty" gorm:"size:512"`
	Password  string     `json:"-" gorm:"size:255;not null"`
	Role      UserRole   `json:"role" gorm:"size:20;not null;column:user_role"`
}

func (User) TableName() string {
	return "users"
}
