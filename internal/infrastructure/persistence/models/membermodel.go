package models

import "github.com/igiffrekt/MusqlApp-sub002/internal/shared/constants"

// MemberModel maps the membership context's members table. The check-in
// context reads it and never writes.
type MemberModel struct {
	ID        uint   `gorm:"primaryKey"`
	TenantID  uint   `gorm:"column:tenant_id"`
	UserID    uint   `gorm:"column:user_id"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Photo     string `gorm:"column:photo"`
	Rank      string `gorm:"column:rank"`
	Status    string `gorm:"column:status"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}

// TableName returns the table name for MemberModel
func (MemberModel) TableName() string {
	return constants.TableMembers
}
