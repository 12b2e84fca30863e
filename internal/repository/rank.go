package repository

import (
	"fmt"
	"strings"

	"github.com/lenspick/lenspick-backend/internal/common"
	"gorm.io/gorm"
)

// 랭크 이동 방향
const (
	RankMoveUp     = "up"
	RankMoveDown   = "down"
	RankMoveTop    = "top"
	RankMoveBottom = "bottom"
)

// RankEntry is one (id, rank) pair of a bulk reorder
type RankEntry struct {
	ID   uint `json:"id" binding:"required"`
	Rank int  `json:"rank" binding:"required,min=1"`
}

// moveRank reorders one row of a ranked table. Ranks always form a 1..N
// permutation; every path swaps or shifts inside one transaction.
func moveRank(db *gorm.DB, table string, id uint, direction string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var current struct {
			ID   uint
			Rank int
		}
		if err := tx.Table(table).Select("id, `rank`").
			Where("id = ?", id).Take(&current).Error; err != nil {
			return common.ErrNotFound
		}

		var max int64
		if err := tx.Table(table).Count(&max).Error; err != nil {
			return err
		}

		switch direction {
		case RankMoveUp:
			if current.Rank <= 1 {
				return nil
			}
			return swapRanks(tx, table, current.ID, current.Rank, current.Rank-1)
		case RankMoveDown:
			if int64(current.Rank) >= max {
				return nil
			}
			return swapRanks(tx, table, current.ID, current.Rank, current.Rank+1)
		case RankMoveTop:
			if current.Rank <= 1 {
				return nil
			}
			if err := tx.Table(table).
				Where("`rank` < ?", current.Rank).
				Update("rank", gorm.Expr("`rank` + 1")).Error; err != nil {
				return err
			}
			return tx.Table(table).Where("id = ?", current.ID).
				Update("rank", 1).Error
		case RankMoveBottom:
			if int64(current.Rank) >= max {
				return nil
			}
			if err := tx.Table(table).
				Where("`rank` > ?", current.Rank).
				Update("rank", gorm.Expr("`rank` - 1")).Error; err != nil {
				return err
			}
			return tx.Table(table).Where("id = ?", current.ID).
				Update("rank", max).Error
		default:
			return common.ErrInvalidInput
		}
	})
}

func swapRanks(tx *gorm.DB, table string, id uint, from, to int) error {
	if err := tx.Table(table).Where("`rank` = ?", to).
		Update("rank", from).Error; err != nil {
		return err
	}
	return tx.Table(table).Where("id = ?", id).
		Update("rank", to).Error
}

// bulkRank applies a full (id, rank) permutation as a single CASE-driven
// UPDATE so partial application is impossible. The entries must cover a
// 1..N permutation; the caller validates that.
func bulkRank(db *gorm.DB, table string, entries []RankEntry) error {
	if len(entries) == 0 {
		return nil
	}

	var cases strings.Builder
	args := make([]interface{}, 0, len(entries)*2+len(entries))
	ids := make([]interface{}, 0, len(entries))

	cases.WriteString(fmt.Sprintf("UPDATE %s SET `rank` = CASE id", table))
	for _, e := range entries {
		cases.WriteString(" WHEN ? THEN ?")
		args = append(args, e.ID, e.Rank)
		ids = append(ids, e.ID)
	}
	cases.WriteString(" END WHERE id IN (?")
	cases.WriteString(strings.Repeat(",?", len(entries)-1))
	cases.WriteString(")")
	args = append(args, ids...)

	return db.Exec(cases.String(), args...).Error
}

// ValidatePermutation checks entries form exactly the 1..N rank set
func ValidatePermutation(entries []RankEntry) error {
	seenRank := make(map[int]bool, len(entries))
	seenID := make(map[uint]bool, len(entries))
	for _, e := range entries {
		if e.Rank < 1 || e.Rank > len(entries) || seenRank[e.Rank] || seenID[e.ID] {
			return common.ErrInvalidInput
		}
		seenRank[e.Rank] = true
		seenID[e.ID] = true
	}
	return nil
}
