package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
	"github.com/HuongNguyenDev/beautycare-admin/internal/timezone"
)

type Logger struct {
	db *gorm.DB
	tz string
}

func New(db *gorm.DB, tz string) *Logger {
	return &Logger{db: db, tz: tz}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	// audit timestamps follow the business timezone, not the server's
	entry := models.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: timezone.NowIn(l.tz),
	}

	return l.db.Create(&entry).Error
}
