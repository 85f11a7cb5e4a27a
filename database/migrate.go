package database

import (
	"servibook_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every model and then applies the uniqueness
// constraints AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Worker{},
		&models.Service{},
	); err != nil {
		return err
	}

	// Uniqueness is scoped to active records: a soft-deleted worker's
	// document or email may be reused. The advisory probes in the services
	// give friendly errors; these indexes are what actually guarantees the
	// invariant under concurrent creation.
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_workers_document_active
			ON workers (document) WHERE status = 'active'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_workers_email_active
			ON workers (email) WHERE status = 'active'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email_active
			ON customers (email) WHERE status = 'active'`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
