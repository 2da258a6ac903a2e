package configs

import (
	"github.com/IEarari/Seeds/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

// SetupDatabase migrates the schema, including the composite
// (status, created_at) index the reviewer queue relies on.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Application{},
		&entity.VolunteeringSettings{},
		&entity.Menu{},
		&entity.AuditLog{},
	)
}
