package gamification_test

import (
	"testing"
	"time"

	"english_quest_backend/internal/gamification"
	"english_quest_backend/internal/model"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{10000, 11},
		{250000, 51},
	}
	for _, tc := range cases {
		if got := gamification.Level(tc.xp); got != tc.want {
			t.Errorf("Level(%d): got=%d want=%d", tc.xp, got, tc.want)
		}
	}
}

func TestLevelIsMonotonic(t *testing.T) {
	prev := gamification.Level(0)
	for xp := 1; xp <= 60000; xp++ {
		cur := gamification.Level(xp)
		if cur < prev {
			t.Fatalf("Level(%d)=%d is lower than Level(%d)=%d", xp, cur, xp-1, prev)
		}
		prev = cur
	}
}

func TestLevelProgressPercent(t *testing.T) {
	cases := []struct {
		xp   int
		want float64
	}{
		{0, 0},
		{50, 50},
		{100, 0},
		{250, 50},
		{399, 99.66666666666667},
	}
	for _, tc := range cases {
		got := gamification.LevelProgressPercent(tc.xp)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("LevelProgressPercent(%d): got=%v want=%v", tc.xp, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Errorf("LevelProgressPercent(%d)=%v out of range", tc.xp, got)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := map[int]string{
		1:  "Novice Learner",
		4:  "Novice Learner",
		5:  "Sentence Builder",
		10: "Grammar Knight",
		19: "Grammar Knight",
		20: "Language Archmage",
		50: "Grandmaster of English",
	}
	for level, want := range cases {
		if got := gamification.Title(level); got != want {
			t.Errorf("Title(%d): got=%q want=%q", level, got, want)
		}
	}
}

func TestRankFor(t *testing.T) {
	cases := []struct {
		pct  float64
		want gamification.RankTier
	}{
		{100, gamification.RankLegend},
		{99.9, gamification.RankElite},
		{90, gamification.RankElite},
		{70, gamification.RankVeteran},
		{50, gamification.RankScout},
		{49.9, gamification.RankRookie},
		{0, gamification.RankRookie},
	}
	for _, tc := range cases {
		if got := gamification.RankFor(tc.pct).Tier; got != tc.want {
			t.Errorf("RankFor(%v): got=%s want=%s", tc.pct, got, tc.want)
		}
	}
	if icon := gamification.RankFor(100).Icon; icon != model.IconCrown {
		t.Errorf("legend icon: got=%s want=%s", icon, model.IconCrown)
	}
}

func TestLeagueFor(t *testing.T) {
	cases := []struct {
		xp   int
		want model.League
	}{
		{0, model.LeagueBronze},
		{499, model.LeagueBronze},
		{500, model.LeagueSilver},
		{1500, model.LeagueGold},
		{2999, model.LeagueGold},
		{3000, model.LeaguePlatinum},
		{5000, model.LeagueDiamond},
		{999999, model.LeagueDiamond},
	}
	for _, tc := range cases {
		if got := gamification.LeagueFor(tc.xp); got != tc.want {
			t.Errorf("LeagueFor(%d): got=%s want=%s", tc.xp, got, tc.want)
		}
	}
}

func TestLeagueIsMonotonic(t *testing.T) {
	rank := func(l model.League) int {
		for i, tier := range gamification.Leagues {
			if tier.League == l {
				return i
			}
		}
		t.Fatalf("unknown league %s", l)
		return -1
	}
	prev := rank(gamification.LeagueFor(0))
	for xp := 1; xp <= 6000; xp++ {
		cur := rank(gamification.LeagueFor(xp))
		if cur < prev {
			t.Fatalf("league dropped at xp=%d", xp)
		}
		prev = cur
	}
}

func TestPromote(t *testing.T) {
	t.Run("never demotes", func(t *testing.T) {
		got, promoted := gamification.Promote(model.LeagueGold, 510)
		if got != model.LeagueGold || promoted {
			t.Fatalf("got=%s promoted=%v want=Gold false", got, promoted)
		}
	})
	t.Run("jumps to highest qualifying tier", func(t *testing.T) {
		got, promoted := gamification.Promote(model.LeagueBronze, 5200)
		if got != model.LeagueDiamond || !promoted {
			t.Fatalf("got=%s promoted=%v want=Diamond true", got, promoted)
		}
	})
	t.Run("single step", func(t *testing.T) {
		got, promoted := gamification.Promote(model.LeagueBronze, 500)
		if got != model.LeagueSilver || !promoted {
			t.Fatalf("got=%s promoted=%v want=Silver true", got, promoted)
		}
	})
	t.Run("unknown league is repaired", func(t *testing.T) {
		got, promoted := gamification.Promote("", 0)
		if got != model.LeagueBronze || !promoted {
			t.Fatalf("got=%s promoted=%v want=Bronze true", got, promoted)
		}
	})
}

func TestIsFlaggedForSpeed(t *testing.T) {
	if !gamification.IsFlaggedForSpeed(29, 10) {
		t.Error("29s for 10 questions should be flagged")
	}
	if gamification.IsFlaggedForSpeed(30, 10) {
		t.Error("30s for 10 questions should not be flagged")
	}
	if !gamification.IsFlaggedForSpeed(0, 1) {
		t.Error("0s for 1 question should be flagged")
	}
}

func TestXPMultiplier(t *testing.T) {
	cases := []struct {
		streak  int
		flagged bool
		want    float64
	}{
		{0, false, 1.0},
		{5, false, 1.0},
		{6, false, 1.2},
		{10, false, 1.2},
		{11, false, 1.7},
		{15, true, 0.1},
		{0, true, 0.1},
	}
	for _, tc := range cases {
		if got := gamification.XPMultiplier(tc.streak, tc.flagged); got != tc.want {
			t.Errorf("XPMultiplier(%d,%v): got=%v want=%v", tc.streak, tc.flagged, got, tc.want)
		}
	}
}

func TestXPEarned(t *testing.T) {
	t.Run("speed penalty overrides streak bonus", func(t *testing.T) {
		for score := 0; score <= 20; score++ {
			got := gamification.XPEarned(score, 15, true)
			want := score * 10 / 10 // floor(score * 10 * 0.1)
			if got != want {
				t.Fatalf("score=%d: got=%d want=%d", score, got, want)
			}
		}
	})
	t.Run("long streak", func(t *testing.T) {
		if got := gamification.XPEarned(10, 15, false); got != 170 {
			t.Fatalf("got=%d want=170", got)
		}
		if got := gamification.XPEarned(3, 15, false); got != 51 {
			t.Fatalf("got=%d want=51", got)
		}
	})
	t.Run("short streak", func(t *testing.T) {
		if got := gamification.XPEarned(7, 6, false); got != 84 {
			t.Fatalf("got=%d want=84", got)
		}
	})
	t.Run("zero score", func(t *testing.T) {
		if got := gamification.XPEarned(0, 20, false); got != 0 {
			t.Fatalf("got=%d want=0", got)
		}
	})
}

func TestCheckIn(t *testing.T) {
	today := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	cases := []struct {
		name       string
		streak     int
		last       string
		wantStreak int
	}{
		{"same day", 4, "2024-03-01", 4},
		{"consecutive day across month end", 4, "2024-02-29", 5},
		{"gap resets", 4, "2024-02-27", 1},
		{"never active", 0, "", 1},
		{"garbage date", 7, "yesterday", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			streak, date := gamification.CheckIn(tc.streak, tc.last, today)
			if streak != tc.wantStreak || date != "2024-03-01" {
				t.Fatalf("got=(%d,%s) want=(%d,2024-03-01)", streak, date, tc.wantStreak)
			}
		})
	}
}
