package views

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/worldcup-sim/internal/middleware"
	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
)

func IsAdmin(ctx context.Context) bool {
	return middleware.IsAdmin(ctx)
}

// ScoreLine renders "2 - 1" for a played match and "vs" otherwise.
func ScoreLine(m tournament.Match) string {
	if !m.IsPlayed() {
		return "vs"
	}
	return fmt.Sprintf("%d - %d", *m.HomeScore, *m.AwayScore)
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
