package models

import "github.com/igiffrekt/MusqlApp-sub002/internal/shared/constants"

// CheckInModel is the persistence model for admission records. Rows are
// insert-only; there is no updated_at column.
type CheckInModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	TenantID   uint   `gorm:"column:tenant_id;not null;index:idx_check_ins_tenant_created,priority:1"`
	MemberID   *uint  `gorm:"column:member_id;index:idx_check_ins_member_id"`
	TerminalID *uint  `gorm:"column:terminal_id;index:idx_check_ins_terminal_id"`
	Method     string `gorm:"size:20;not null"`
	Status     string `gorm:"size:30;not null;index:idx_check_ins_status"`
	Note       string `gorm:"size:255;not null;default:''"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;index:idx_check_ins_tenant_created,priority:2"`
}

// TableName returns the table name for CheckInModel
func (CheckInModel) TableName() string {
	return constants.TableCheckIns
}
