package services

import (
	"sync"
	"testing"

	"matchmaker_backend/internal/email"
	"matchmaker_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Biodata{},
		&models.BiodataSequence{},
		&models.PremiumRequest{},
		&models.Review{},
	)
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// recordingEmailProvider captures approval notifications for assertions.
type recordingEmailProvider struct {
	mu        sync.Mutex
	approvals []string
}

func (p *recordingEmailProvider) Send(msg *email.Message) error { return nil }

func (p *recordingEmailProvider) SendPremiumApproved(to, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.approvals = append(p.approvals, to)
	return nil
}

func (p *recordingEmailProvider) Validate() error { return nil }

func (p *recordingEmailProvider) approvalsSent() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.approvals...)
}
