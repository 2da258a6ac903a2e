package configs

import (
	"log"

	"github.com/IEarari/Seeds/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the first super_admin account from env, once.
func SeedSuperAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding super admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("super admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Super",
		LastName:  "Admin",
		Role:      entity.RoleSuperAdmin,
	}
	return db.Create(&admin).Error
}

// SeedMenus creates the default dropdown lookup lists if absent.
func SeedMenus(db *gorm.DB) error {
	defaults := map[string][]string{
		"education_levels":       {"High School", "Diploma", "Bachelor", "Master", "PhD"},
		"education_branches":     {"Scientific", "Literary", "Industrial", "Commercial"},
		"education_institutions": {},
	}

	for name, items := range defaults {
		menu := entity.Menu{Name: name, Items: items}
		if err := db.Where(entity.Menu{Name: name}).FirstOrCreate(&menu).Error; err != nil {
			return err
		}
	}

	log.Println("lookup menus seeded")
	return nil
}
