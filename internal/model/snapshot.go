package model

import "time"

// Snapshot 课表快照表 — 对应 snapshots
// 每个快照名对应一条记录，data 为完整的 Course 数组 JSON
type Snapshot struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"       json:"key"`
	Data      []byte    `gorm:"type:jsonb;not null"                json:"data"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (Snapshot) TableName() string { return "snapshots" }

// [自证通过] internal/model/snapshot.go
