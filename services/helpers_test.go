package services

import (
	"testing"
	"time"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	// A pooled second connection would see its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Application{},
		&entity.VolunteeringSettings{},
		&entity.Menu{},
		&entity.AuditLog{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newApplicationService(t *testing.T, db *gorm.DB) *ApplicationService {
	t.Helper()
	audit := NewAuditService(repository.NewAuditRepository(db))
	return NewApplicationService(
		db,
		repository.NewApplicationRepository(db),
		repository.NewUserRepository(db),
		repository.NewSettingsRepository(db),
		audit,
	)
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	user := &entity.User{Email: email, Password: "x", Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func setWindow(t *testing.T, db *gorm.DB, open bool) {
	t.Helper()
	s := entity.VolunteeringSettings{ID: entity.SettingsSingletonID, IsApplicationOpen: open}
	if err := db.Save(&s).Error; err != nil {
		t.Fatalf("set window: %v", err)
	}
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *entity.User {
	t.Helper()
	var user entity.User
	if err := db.First(&user, id).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return &user
}

func reloadApplication(t *testing.T, db *gorm.DB, id string) *entity.Application {
	t.Helper()
	var app entity.Application
	if err := db.Where("id = ?", id).First(&app).Error; err != nil {
		t.Fatalf("reload application: %v", err)
	}
	return &app
}

func mustDate(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		t.Fatalf("parse date %s: %v", v, err)
	}
	return d
}

func validProfile() entity.Profile {
	return entity.Profile{
		FirstName:       "Omar",
		FatherName:      "Khaled",
		GrandFatherName: "Mahmoud",
		LastName:        "Nassar",
		NationalID:      "409551234",
		DateOfBirth:     "2001-04-17",
		Mobile:          "0599123456",
		WhatsappE164:    "+970599123456",
		EmergencyPhone:  "0597000111",
		Referees: []entity.Referee{
			{Name: "Sami Odeh", Phone: "0598111222"},
			{Name: "Lina Hamdan", Phone: "0598333444"},
		},
		EducationLevel:       "Bachelor",
		EducationBranch:      "Scientific",
		EducationPlace:       "Birzeit University",
		Hobbies:              []string{"reading"},
		Skills:               []string{"first aid"},
		PreviousVolunteering: []string{},
	}
}
