package gamification

import "english_quest_backend/internal/model"

type LeagueTier struct {
	League model.League `json:"league"`
	MinXP  int          `json:"minXp"`
	Icon   model.Icon   `json:"icon"`
	Color  string       `json:"color"`
}

// Leagues is ordered by ascending MinXP.
var Leagues = []LeagueTier{
	{League: model.LeagueBronze, MinXP: 0, Icon: model.IconShield, Color: "text-amber-700 bg-amber-100 border-amber-200"},
	{League: model.LeagueSilver, MinXP: 500, Icon: model.IconShield, Color: "text-slate-600 bg-slate-100 border-slate-200"},
	{League: model.LeagueGold, MinXP: 1500, Icon: model.IconShield, Color: "text-yellow-600 bg-yellow-100 border-yellow-200"},
	{League: model.LeaguePlatinum, MinXP: 3000, Icon: model.IconShield, Color: "text-cyan-600 bg-cyan-100 border-cyan-200"},
	{League: model.LeagueDiamond, MinXP: 5000, Icon: model.IconCrown, Color: "text-indigo-600 bg-indigo-100 border-indigo-200"},
}

// LeagueFor is the highest tier whose MinXP <= xp.
func LeagueFor(xp int) model.League {
	return Leagues[tierFor(xp)].League
}

func LeagueInfo(league model.League) (LeagueTier, bool) {
	i := tierIndex(league)
	if i < 0 {
		return LeagueTier{}, false
	}
	return Leagues[i], true
}

// Promote returns the league a user holds after reaching xp. Leagues only move up;
// an unknown current league is treated as below Bronze.
func Promote(current model.League, xp int) (model.League, bool) {
	candidate := tierFor(xp)
	if candidate > tierIndex(current) {
		return Leagues[candidate].League, true
	}
	return current, false
}

func tierFor(xp int) int {
	idx := 0
	for i, tier := range Leagues {
		if xp >= tier.MinXP {
			idx = i
		}
	}
	return idx
}

func tierIndex(league model.League) int {
	for i, tier := range Leagues {
		if tier.League == league {
			return i
		}
	}
	return -1
}
