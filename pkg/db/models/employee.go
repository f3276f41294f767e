package models

// Employee is referenced as a warehouse manager.
type Employee struct {
	ID        int64  `gorm:"column:emp_id;primaryKey;autoIncrement" json:"emp_id"`
	FirstName string `gorm:"column:emp_firstname;not null" json:"emp_firstname"`
	LastName  string `gorm:"column:emp_lastname;not null" json:"emp_lastname"`
	Username  string `gorm:"column:username;not null;unique" json:"username"`
}

func (Employee) TableName() string { return "employees" }
