// Package mysql mirrors committed ledger state into MySQL for external SQL
// querying. The archive is a read model only: the authenticated store is
// the system of record and its state hash never depends on these tables.
package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/usecase"
	"github.com/escrowd/go-escrow-ledger/pkg/mysql"
)

// sqlAccount maps to the accounts table.
type sqlAccount struct {
	PubKey       string `gorm:"column:pub_key;type:char(64);primaryKey"`
	Name         string
	Balance      int64
	FrozenAmount uint64
	HistoryLen   uint64
	HistoryHash  string `gorm:"type:char(64)"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlPendingTransfer maps to the pending_transfers table.
type sqlPendingTransfer struct {
	TxHash    string `gorm:"column:tx_hash;type:char(64);primaryKey"`
	FromKey   string `gorm:"column:from_key;type:char(64);index"`
	ToKey     string `gorm:"column:to_key;type:char(64);index"`
	Approver  string `gorm:"type:char(64);index"`
	Amount    uint64
	Fulfilled bool
	UpdatedAt int64 `gorm:"autoUpdateTime:milli"`
}

func (*sqlPendingTransfer) TableName() string {
	return "pending_transfers"
}

// sqlCommit maps to the commits table, one row per committed transaction.
type sqlCommit struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	TxHash    string `gorm:"column:tx_hash;type:char(64);uniqueIndex"`
	Author    string `gorm:"type:char(64);index"`
	Type      uint8
	CreatedAt int64 `gorm:"autoCreateTime:milli"`
}

func (*sqlCommit) TableName() string {
	return "commits"
}

type Archive struct {
	client *mysql.Client
}

func NewArchive(client *mysql.Client) *Archive {
	return &Archive{client: client}
}

// AutoMigrate creates or updates the archive tables.
func (a *Archive) AutoMigrate() error {
	return a.client.DB().AutoMigrate(&sqlAccount{}, &sqlPendingTransfer{}, &sqlCommit{})
}

// RecordCommit upserts the accounts and the escrow ticket touched by one
// committed transaction. Rows carry the post-commit values, so replaying a
// commit is harmless.
func (a *Archive) RecordCommit(ctx context.Context, env *domain.Envelope, accounts []domain.Account, transfer *domain.PendingTransfer) error {
	return a.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, account := range accounts {
			row := sqlAccount{
				PubKey:       account.PubKey.String(),
				Name:         account.Name,
				Balance:      account.Balance,
				FrozenAmount: account.FrozenAmount,
				HistoryLen:   account.HistoryLen,
				HistoryHash:  account.HistoryHash.String(),
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		if transfer != nil {
			row := sqlPendingTransfer{
				TxHash:    transfer.TxHash.String(),
				FromKey:   transfer.From.String(),
				ToKey:     transfer.To.String(),
				Approver:  transfer.Approver.String(),
				Amount:    transfer.Amount,
				Fulfilled: transfer.Fulfilled,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		commit := sqlCommit{
			TxHash: env.TxID.String(),
			Author: env.Author.String(),
			Type:   uint8(env.Payload.Type()),
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&commit).Error
	})
}

var _ usecase.Archive = (*Archive)(nil)
