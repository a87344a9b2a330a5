package chanstate

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SignedNonce is the persistence model for the per-channel high-water mark.
type SignedNonce struct {
	ChannelID string `gorm:"column:channel_id;primaryKey"`
	Nonce     uint64 `gorm:"column:nonce;not null"`
}

// TableName specifies the table name for GORM.
func (SignedNonce) TableName() string {
	return "signed_nonces"
}

var _ NonceStore = (*GormNonceStore)(nil)

// GormNonceStore persists signed nonces through GORM, so the downgrade
// protection survives process restarts.
type GormNonceStore struct {
	db *gorm.DB
}

// NewGormNonceStore creates a store on an existing GORM connection and
// migrates its table.
func NewGormNonceStore(db *gorm.DB) (*GormNonceStore, error) {
	if err := db.AutoMigrate(&SignedNonce{}); err != nil {
		return nil, fmt.Errorf("failed to migrate signed nonce table: %w", err)
	}
	return &GormNonceStore{db: db}, nil
}

// OpenSQLiteNonceStore opens (creating if needed) a SQLite-backed store at
// the given path.
func OpenSQLiteNonceStore(path string) (*GormNonceStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open nonce store: %w", err)
	}
	return NewGormNonceStore(db)
}

// LastSigned implements NonceStore.
func (s *GormNonceStore) LastSigned(channelID common.Hash) (uint64, bool, error) {
	var record SignedNonce
	err := s.db.Where("channel_id = ?", channelID.Hex()).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return record.Nonce, true, nil
}

// SetLastSigned implements NonceStore.
func (s *GormNonceStore) SetLastSigned(channelID common.Hash, nonce uint64) error {
	record := SignedNonce{ChannelID: channelID.Hex(), Nonce: nonce}
	return s.db.Save(&record).Error
}
