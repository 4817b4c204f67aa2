package service

import (
	"fmt"
	"strconv"

	"github.com/AdamBeresnev/worldcup-sim/internal/utils"
)

// ParseScore reads a score typed by a user. Blank input clears the score and
// returns nil.
func ParseScore(input string) (*int, error) {
	s := utils.StringOrNil(input)
	if s == nil {
		return nil, nil
	}

	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScore, input)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScore, n)
	}
	return &n, nil
}

func validateScore(home, away *int) error {
	if (home == nil) != (away == nil) {
		return ErrPartialScore
	}
	if home != nil && (*home < 0 || *away < 0) {
		return ErrInvalidScore
	}
	return nil
}
