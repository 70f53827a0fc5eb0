package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/joinboard/join-api/internal/constants"
)

// RandomBadgeColor draws a badge color index uniformly from
// [BadgeColorMin, BadgeColorMax]. The draw happens exactly once, at contact
// creation; updates never re-randomize.
func RandomBadgeColor() (int, error) {
	span := int64(constants.BadgeColorMax - constants.BadgeColorMin + 1)
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return 0, fmt.Errorf("failed to draw badge color: %w", err)
	}
	return constants.BadgeColorMin + int(n.Int64()), nil
}

// ValidBadgeColor reports whether c is inside the badge color range.
func ValidBadgeColor(c int) bool {
	return c >= constants.BadgeColorMin && c <= constants.BadgeColorMax
}
