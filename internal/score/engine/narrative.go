package engine

import (
	"fmt"
	"strings"

	"github.com/marketlens/marketlens/internal/domain"
	"github.com/marketlens/marketlens/internal/sector"
)

// Fundamentals-strength thresholds used only for the narrative wording.
const (
	fundamentalsExceptional = 80.0
	fundamentalsSolid       = 60.0
)

// verdict assembles the deterministic explanation: same input, same string.
// It references the dominant drivers — rating, fundamentals strength, fired
// gates — plus sentiment and regime context when present.
func verdict(stock domain.StockData, theme sector.Theme, rating domain.Rating, score int, fScore float64, gatesFired int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s rates %s at %d/100.", stock.Ticker, rating, score)

	switch {
	case fScore >= fundamentalsExceptional:
		fmt.Fprintf(&b, " Fundamentals are exceptional for a %s name (%.0f/100 quality).", theme, fScore)
	case fScore >= fundamentalsSolid:
		fmt.Fprintf(&b, " Fundamentals are solid for a %s name (%.0f/100 quality).", theme, fScore)
	default:
		fmt.Fprintf(&b, " Fundamentals are weak for a %s name (%.0f/100 quality).", theme, fScore)
	}

	switch gatesFired {
	case 0:
		b.WriteString(" No risk gates fired.")
	case 1:
		b.WriteString(" One risk gate reduced the score.")
	default:
		b.WriteString(" Both the trend and projected-downside gates reduced the score.")
	}

	if stock.Sentiment.Label != "" {
		fmt.Fprintf(&b, " News sentiment reads %s across %d articles.",
			strings.ToLower(stock.Sentiment.Label), stock.Sentiment.ArticleCount)
	}

	if stock.MarketBullRegime {
		b.WriteString(" The broader market is in a bull regime.")
	}

	return b.String()
}
