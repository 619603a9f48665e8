package model

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

type League string

const (
	LeagueBronze   League = "Bronze"
	LeagueSilver   League = "Silver"
	LeagueGold     League = "Gold"
	LeaguePlatinum League = "Platinum"
	LeagueDiamond  League = "Diamond"
)

// swagger:model User
type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Username         string `json:"username"`
	Role             Role   `json:"role"`
	XP               int    `json:"xp"`
	League           League `json:"league"` // cached tier, promotion-only
	ImpactScore      int    `json:"impactScore"`
	StreakDays       int    `json:"streakDays"`
	LastActivityDate string `json:"lastActivityDate"` // YYYY-MM-DD
	Avatar           string `json:"avatar,omitempty"`
}
