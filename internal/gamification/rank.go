package gamification

import "english_quest_backend/internal/model"

type RankTier string

const (
	RankLegend  RankTier = "LEGEND"
	RankElite   RankTier = "ELITE"
	RankVeteran RankTier = "VETERAN"
	RankScout   RankTier = "SCOUT"
	RankRookie  RankTier = "ROOKIE"
)

// Rank is the mastery badge for one attempt, independent of leagues.
type Rank struct {
	Tier  RankTier   `json:"tier"`
	Emoji string     `json:"emoji"`
	Icon  model.Icon `json:"icon"`
}

// RankFor maps a score percentage (0..100) to a badge.
func RankFor(percentage float64) Rank {
	switch {
	case percentage >= 100:
		return Rank{Tier: RankLegend, Emoji: "👑", Icon: model.IconCrown}
	case percentage >= 90:
		return Rank{Tier: RankElite, Emoji: "💎", Icon: model.IconAward}
	case percentage >= 70:
		return Rank{Tier: RankVeteran, Emoji: "⚔️", Icon: model.IconMedal}
	case percentage >= 50:
		return Rank{Tier: RankScout, Emoji: "🧭", Icon: model.IconBrain}
	default:
		return Rank{Tier: RankRookie, Emoji: "🥚", Icon: model.IconBookOpen}
	}
}

// BlockPercentage is the badge percentage for a block score out of model.BlockSize.
func BlockPercentage(score int) float64 {
	return float64(score) / model.BlockSize * 100
}
