package models

import (
	"time"

	"gorm.io/gorm"
)

// Lecture represents a scheduled class session, optionally carrying one
// audio recording. The AudioAssetID reference is replaced wholesale when
// a teacher uploads new audio; the old asset is soft-deleted rather than
// rewound.
type Lecture struct {
	gorm.Model
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ClassroomID uint      `gorm:"not null;index:idx_lectures_classroom" json:"classroom_id"`
	CreatedBy   uint      `gorm:"not null;index:idx_lectures_creator" json:"created_by"`

	AudioAssetID *uint       `json:"audio_asset_id,omitempty"`
	AudioAsset   *AudioAsset `gorm:"foreignKey:AudioAssetID" json:"audio_asset,omitempty"`
}

// TableName specifies the table name for GORM
func (Lecture) TableName() string {
	return "lectures"
}

// HasAudio reports whether the lecture carries an audio recording
func (l *Lecture) HasAudio() bool {
	return l.AudioAssetID != nil
}
