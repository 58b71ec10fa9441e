package models

import "time"

// Topic 话题表
type Topic struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(40);uniqueIndex:uk_topics_name;not null" json:"name"`
	Description string    `gorm:"column:description;type:varchar(200);default:''" json:"description"`
	Image       string    `gorm:"column:image;type:varchar(255);default:''" json:"image"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Topic) TableName() string {
	return "topics"
}
