package models

// StateSnapshot is one persisted tournament state document stored under a fixed key
type StateSnapshot struct {
	BaseModel
	Key     string `json:"key" gorm:"primaryKey;size:100" validate:"required,max=100"`
	Payload string `json:"payload" gorm:"type:text;not null" validate:"required"`
	Version int    `json:"version" gorm:"not null;default:1"`
}

// TableName overrides the default table name
func (StateSnapshot) TableName() string {
	return "state_snapshots"
}
