package service

import (
	"errors"
	"strconv"

	"github.com/lenspick/lenspick-backend/internal/common"
)

// findByNameOrID resolves a detail-path segment that may be a design name
// or a numeric ID. Name wins; the ID fallback only applies when the name
// lookup misses and the segment is all digits.
func findByNameOrID[T any](nameOrID string, byName func(string) (*T, error), byID func(uint) (*T, error)) (*T, error) {
	item, err := byName(nameOrID)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if id, convErr := strconv.ParseUint(nameOrID, 10, 32); convErr == nil {
		return byID(uint(id))
	}
	return nil, common.ErrNotFound
}
