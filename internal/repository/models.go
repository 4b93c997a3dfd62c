package repository

import "time"

// FlowRecord is the persisted history of one chained flow.
type FlowRecord struct {
	ID          string  `gorm:"primaryKey;autoIncrement:false"`
	UserID      string  `gorm:"size:36;not null;index"`
	Kind        string  `gorm:"size:32;not null"`
	ChainID     uint64  `gorm:"not null"`
	Owner       string  `gorm:"size:42;not null"`  // 0x + 40 hex
	Delegatee   *string `gorm:"size:42"`           // only for delegation flows
	Amount      string  `gorm:"size:100;not null"` // base units, decimal string
	Step        int     `gorm:"not null;default:0"`
	Step1TxHash *string `gorm:"size:66"`
	Step2TxHash *string `gorm:"size:66"`
	LastError   string  `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
