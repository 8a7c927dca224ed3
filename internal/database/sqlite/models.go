package sqlite

import "time"

// SaveModel is the GORM model for one persisted save document
type SaveModel struct {
	SaveID    string    `gorm:"column:save_id;primaryKey;size:128"`
	Payload   string    `gorm:"column:payload;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

// TableName implements gorm's Tabler
func (SaveModel) TableName() string {
	return TableSaveDocuments
}

// EventModel is the GORM model for one logged event
type EventModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EventType string    `gorm:"column:event_type;size:64;not null;index:idx_events_type_created"`
	Payload   string    `gorm:"column:payload;type:text;not null"`
	Metadata  *string   `gorm:"column:metadata;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_events_type_created"`
}

// TableName implements gorm's Tabler
func (EventModel) TableName() string {
	return TableEvents
}
