package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"english_quest_backend/internal/assessment"
	"english_quest_backend/internal/config"
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/tracker"
	"english_quest_backend/internal/util"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// flakyStore fails writes to one key while failKey is set.
type flakyStore struct {
	*repository.MemoryKVStore
	mu      sync.Mutex
	failKey string
}

func (s *flakyStore) failWrites(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failKey = key
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	fail := s.failKey != "" && s.failKey == key
	s.mu.Unlock()
	if fail {
		return errors.New("disk full")
	}
	return s.MemoryKVStore.Set(ctx, key, value)
}

type testEnv struct {
	ctx         context.Context
	clock       *fakeClock
	store       *flakyStore
	users       *repository.UserRepository
	categories  *repository.CategoryRepository
	progress    *repository.ProgressRepository
	sessions    *repository.SessionRepository
	completions *repository.CompletionRepository
	missionRepo *repository.MissionRepository

	auth        *AuthService
	content     *ContentService
	missions    *MissionService
	scoring     *ScoringService
	assessments *AssessmentService
	leaderboard *LeaderboardService
	analytics   *AnalyticsService
}

// Wednesday
var testStart = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := &flakyStore{MemoryKVStore: repository.NewMemoryKVStore()}
	must := func(err error) {
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	e := &testEnv{ctx: ctx, clock: &fakeClock{t: testStart}, store: store}
	var err error
	e.users, err = repository.NewUserRepository(ctx, store)
	must(err)
	e.categories, err = repository.NewCategoryRepository(ctx, store)
	must(err)
	e.progress, err = repository.NewProgressRepository(ctx, store)
	must(err)
	e.sessions, err = repository.NewSessionRepository(ctx, store)
	must(err)
	e.completions, err = repository.NewCompletionRepository(ctx, store)
	must(err)
	e.missionRepo, err = repository.NewMissionRepository(ctx, store)
	must(err)

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	e.missions = NewMissionService(e.missionRepo)
	e.missions.now = e.clock.Now
	e.auth = NewAuthService(e.users, e.missions, cfg)
	e.auth.now = e.clock.Now
	e.content = NewContentService(e.categories)
	e.scoring = NewScoringService(e.users, e.progress, e.completions, e.missions)
	e.scoring.now = e.clock.Now
	e.assessments = NewAssessmentService(e.categories, e.users, e.progress, e.completions, e.sessions, e.scoring)
	e.assessments.newSource = func() assessment.Source { return rand.New(rand.NewPCG(1, 2)) }
	e.assessments.trackerOpts = []tracker.Option{tracker.WithClock(e.clock.Now)}
	e.leaderboard = NewLeaderboardService(e.users)
	e.analytics = NewAnalyticsService(e.progress, e.sessions, e.users)
	return e
}

// addTopic creates a topic whose questions all accept "yes" among ["yes", "no"].
func (e *testEnv) addTopic(t *testing.T, n int) (string, *model.Topic) {
	t.Helper()
	cat, err := e.content.CreateCategory(e.ctx, "Test")
	if err != nil {
		t.Fatal(err)
	}
	topic, err := e.content.CreateTopic(e.ctx, cat.ID, "Drill")
	if err != nil {
		t.Fatal(err)
	}
	var qs []model.Question
	for i := 0; i < n; i++ {
		qs = append(qs, model.Question{
			ID:            fmt.Sprintf("d%d", i),
			Text:          fmt.Sprintf("drill %d", i),
			Options:       []string{"yes", "no"},
			CorrectAnswer: "yes",
		})
	}
	saved, err := e.content.SaveTopic(e.ctx, cat.ID, topic.ID, TopicInput{Title: "Drill", ManualQuestions: qs})
	if err != nil {
		t.Fatal(err)
	}
	return cat.ID, saved
}

// answerAll answers every question of the running set with value.
func (e *testEnv) answerAll(t *testing.T, userID, value string) {
	t.Helper()
	total := e.assessments.State(userID).Total
	for i := 0; i < total; i++ {
		e.assessments.GoTo(userID, i)
		if _, err := e.assessments.Answer(userID, value); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
}

func (e *testEnv) practiceBlock(t *testing.T, userID, topicID string, block int, took time.Duration) *model.ExamResult {
	t.Helper()
	if _, err := e.assessments.StartPractice(e.ctx, userID, topicID, &block); err != nil {
		t.Fatal(err)
	}
	e.answerAll(t, userID, "yes")
	e.clock.Advance(took)
	result, err := e.assessments.Finish(e.ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestExamScoringEndToEnd(t *testing.T) {
	e := newTestEnv(t)
	cat, _ := e.content.CreateCategory(e.ctx, "Tenses")
	topic, _ := e.content.CreateTopic(e.ctx, cat.ID, "Perfect Continuous")
	_, err := e.content.SaveTopic(e.ctx, cat.ID, topic.ID, TopicInput{
		Title: "Perfect Continuous",
		ManualQuestions: []model.Question{
			{ID: "a", Text: "I ___ for hours.", CorrectAnswer: "I have been waiting"},
			{ID: "b", Text: "She ___ when I arrived.", CorrectAnswer: "was cooking"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.assessments.StartExam(e.ctx, "2", topic.ID); err != nil {
		t.Fatal(err)
	}
	given := map[string]string{"a": "I HAVE BEEN WAITING.", "b": "was cooking"}
	for i := 0; i < 2; i++ {
		state := e.assessments.GoTo("2", i)
		if _, err := e.assessments.Answer("2", given[state.Question.ID]); err != nil {
			t.Fatal(err)
		}
	}
	e.clock.Advance(60 * time.Second)

	result, err := e.assessments.Finish(e.ctx, "2")
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 2 || result.Total != 2 || result.IsFlaggedForSpeed {
		t.Fatalf("result: %+v", result)
	}
	if result.XPEarned != 20 || result.MissionXP != 100 {
		t.Fatalf("xp=%d mission=%d want 20 and 100", result.XPEarned, result.MissionXP)
	}
	if result.TimeTakenSeconds != 60 {
		t.Fatalf("duration: %d", result.TimeTakenSeconds)
	}

	user, _ := e.users.FindByID("2")
	if user.XP != 240 {
		t.Fatalf("user xp: got=%d want=240", user.XP)
	}
	history := e.progress.ListByUser("2")
	if len(history) != 1 || len(history[0].Mistakes) != 0 || history[0].Type != model.ActivityExam {
		t.Fatalf("history: %+v", history)
	}
	sessions := e.sessions.ListByUser("2")
	if len(sessions) != 1 || sessions[0].DurationSeconds != 60 || sessions[0].ActivityType != model.ActivityExam {
		t.Fatalf("sessions: %+v", sessions)
	}
	if e.assessments.State("2").View != assessment.ViewResults {
		t.Fatal("expected results view")
	}
}

func TestSpeedFlagOverridesStreakBonus(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 10)

	// alexj has a 15 day streak.
	result := e.practiceBlock(t, "3", topic.ID, 0, 29*time.Second)
	if !result.IsFlaggedForSpeed {
		t.Fatal("29s for 10 questions should be flagged")
	}
	if result.XPEarned != 10 {
		t.Fatalf("xp: got=%d want=10", result.XPEarned)
	}

	result = e.practiceBlock(t, "3", topic.ID, 0, 30*time.Second)
	if result.IsFlaggedForSpeed || result.XPEarned != 170 {
		t.Fatalf("30s run: flagged=%v xp=%d", result.IsFlaggedForSpeed, result.XPEarned)
	}
}

func TestBlockCompletionAndOverview(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 15)

	overview, err := e.assessments.OpenPracticeSelect(e.ctx, "2", topic.ID)
	if err != nil {
		t.Fatal(err)
	}
	if overview.ExercisesCount != 2 || overview.ExamUnlocked {
		t.Fatalf("fresh overview: %+v", overview)
	}

	e.practiceBlock(t, "2", topic.ID, 1, time.Minute)
	e.practiceBlock(t, "2", topic.ID, 1, time.Minute)
	if got := e.completions.Completed("2", topic.ID); len(got) != 1 || got[0] != 1 {
		t.Fatalf("completed blocks: %v", got)
	}

	e.practiceBlock(t, "2", topic.ID, 0, time.Minute)
	overview, _ = e.assessments.PracticeOverview("2", topic.ID)
	if !overview.ExamUnlocked {
		t.Fatal("exam should unlock once every block is done")
	}
	b0 := overview.Exercises[0]
	if b0.BestScore == nil || *b0.BestScore != 10 || b0.Rank.Tier != "LEGEND" {
		t.Fatalf("block 0: %+v", b0)
	}
	if b1 := overview.Exercises[1]; b1.QuestionCount != 5 || *b1.BestScore != 5 {
		t.Fatalf("block 1: %+v", b1)
	}
}

func TestDailyMissionCompletesOnceAndResets(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 10)

	var missionXP int
	for i := 0; i < 4; i++ {
		missionXP += e.practiceBlock(t, "2", topic.ID, 0, time.Minute).MissionXP
	}
	if missionXP != 50 {
		t.Fatalf("mission xp over four practices: got=%d want=50", missionXP)
	}

	e.clock.Advance(24 * time.Hour) // Thursday
	if n, err := e.missions.ResetExpired(e.ctx); err != nil || n != 1 {
		t.Fatalf("reset: n=%d err=%v", n, err)
	}
	for _, m := range e.missions.List() {
		if m.ID == "m1" && (m.Completed || m.Progress != 0) {
			t.Fatalf("daily mission not reset: %+v", m)
		}
	}
}

func TestLeaguePromotionIsReported(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 10)
	if _, err := e.users.Modify(e.ctx, "2", func(u *model.User) error { u.XP = 1450; return nil }); err != nil {
		t.Fatal(err)
	}

	result := e.practiceBlock(t, "2", topic.ID, 0, time.Minute)
	if !result.Promoted || result.League != model.LeagueGold {
		t.Fatalf("promotion: promoted=%v league=%s", result.Promoted, result.League)
	}
	board := e.leaderboard.Leaderboard("2", 2)
	if len(board.Entries) != 2 || board.Me == nil || board.Me.Rank != 3 {
		t.Fatalf("leaderboard: %+v me=%+v", board.Entries, board.Me)
	}
}

func TestEmptyTopicRefusalKeepsView(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 3)
	cat, _ := e.content.CreateCategory(e.ctx, "Empty")
	empty, _ := e.content.CreateTopic(e.ctx, cat.ID, "Nothing yet")

	if _, err := e.assessments.StartStudy(e.ctx, "2", topic.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := e.assessments.StartExam(e.ctx, "2", empty.ID); !errors.Is(err, util.ErrNoExam) {
		t.Fatalf("exam: got %v", err)
	}
	if _, err := e.assessments.OpenPracticeSelect(e.ctx, "2", empty.ID); !errors.Is(err, util.ErrNoQuestions) {
		t.Fatalf("practice select: got %v", err)
	}
	state := e.assessments.State("2")
	if state.View != assessment.ViewStudy || state.TopicID != topic.ID {
		t.Fatalf("view changed: %s %s", state.View, state.TopicID)
	}
	if len(e.sessions.ListByUser("2")) != 0 {
		t.Fatal("refused entry must not close the running study session")
	}
}

func TestExitAndSwitchCloseSessions(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 10)

	_, _ = e.assessments.StartStudy(e.ctx, "2", topic.ID)
	e.clock.Advance(42 * time.Second)
	block := 0
	if _, err := e.assessments.StartPractice(e.ctx, "2", topic.ID, &block); err != nil {
		t.Fatal(err)
	}
	e.clock.Advance(10 * time.Second)
	state, err := e.assessments.Exit(e.ctx, "2")
	if err != nil {
		t.Fatal(err)
	}
	if state.View != assessment.ViewPracticeSelect {
		t.Fatalf("exit from practice: %s", state.View)
	}

	sessions := e.sessions.ListByUser("2")
	if len(sessions) != 2 {
		t.Fatalf("sessions: %+v", sessions)
	}
	if sessions[1].ActivityType != model.ActivityStudy || sessions[1].DurationSeconds != 42 {
		t.Fatalf("study session: %+v", sessions[1])
	}
	if sessions[0].ActivityType != model.ActivityPractice || sessions[0].DurationSeconds != 10 {
		t.Fatalf("practice session: %+v", sessions[0])
	}
	if len(e.progress.ListByUser("2")) != 0 {
		t.Fatal("abandoned practice must not be scored")
	}
}

func TestLoginChecksInAndIssuesToken(t *testing.T) {
	e := newTestEnv(t)

	res, err := e.auth.Login(e.ctx, "Student")
	if err != nil {
		t.Fatal(err)
	}
	if res.Profile.User.StreakDays != 1 || res.Profile.User.LastActivityDate != "2024-05-15" {
		t.Fatalf("check-in: %+v", res.Profile.User)
	}
	claims, err := util.ParseJWT(res.Token, "test-secret")
	if err != nil || claims.UserID != "2" || claims.Role != model.RoleStudent {
		t.Fatalf("claims: %+v err=%v", claims, err)
	}

	e.clock.Advance(24 * time.Hour)
	res, _ = e.auth.Login(e.ctx, "student")
	if res.Profile.User.StreakDays != 2 {
		t.Fatalf("next day streak: %d", res.Profile.User.StreakDays)
	}
	if _, err := e.auth.Login(e.ctx, "ghost"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("unknown user: %v", err)
	}
}

func TestLoginStreakCompletesConsistencyMission(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.users.Modify(e.ctx, "2", func(u *model.User) error {
		u.StreakDays, u.LastActivityDate = 4, "2024-05-14"
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	res, err := e.auth.Login(e.ctx, "student")
	if err != nil {
		t.Fatal(err)
	}
	if res.Profile.User.StreakDays != 5 || res.Profile.User.XP != 320 {
		t.Fatalf("after login: streak=%d xp=%d want 5 and 320", res.Profile.User.StreakDays, res.Profile.User.XP)
	}
	if len(res.CompletedMissions) != 1 || res.CompletedMissions[0] != "m3" {
		t.Fatalf("completed missions: %v", res.CompletedMissions)
	}

	res, _ = e.auth.Login(e.ctx, "student")
	if res.Profile.User.XP != 320 || len(res.CompletedMissions) != 0 {
		t.Fatalf("same day login paid again: xp=%d missions=%v", res.Profile.User.XP, res.CompletedMissions)
	}
}

func TestShortStreakAdvancesMissionWithoutReward(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.users.Modify(e.ctx, "2", func(u *model.User) error {
		u.StreakDays, u.LastActivityDate = 1, "2024-05-14"
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	res, err := e.auth.Login(e.ctx, "student")
	if err != nil {
		t.Fatal(err)
	}
	if res.Profile.User.XP != 120 || len(res.CompletedMissions) != 0 {
		t.Fatalf("xp=%d missions=%v", res.Profile.User.XP, res.CompletedMissions)
	}
	for _, m := range e.missions.List() {
		if m.ID == "m3" && (m.Progress != 2 || m.Completed) {
			t.Fatalf("streak mission: %+v", m)
		}
	}
}

func TestProfileLevels(t *testing.T) {
	p := BuildProfile(&model.User{XP: 450, League: model.LeagueBronze})
	if p.Level != 3 || p.NextLevelXP != 900 || p.League.League != model.LeagueBronze {
		t.Fatalf("profile: %+v", p)
	}
}

func TestUserAdmin(t *testing.T) {
	e := newTestEnv(t)
	users := NewUserService(e.users)

	u, err := users.Create(e.ctx, "  Ana  María ", "")
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "anamaría" || u.Role != model.RoleStudent || u.League != model.LeagueBronze || u.XP != 0 {
		t.Fatalf("created: %+v", u)
	}
	if _, err := users.Create(e.ctx, "ana maría", model.RoleStudent); !errors.Is(err, util.ErrUsernameTaken) {
		t.Fatalf("duplicate: %v", err)
	}
	if _, err := users.Create(e.ctx, " ", ""); !errors.Is(err, util.ErrInvalidName) {
		t.Fatalf("blank name: %v", err)
	}
	if err := users.Delete(e.ctx, "1", "1"); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("self delete: %v", err)
	}
	if err := users.Delete(e.ctx, "1", u.ID); err != nil {
		t.Fatal(err)
	}
}

func TestContentAdmin(t *testing.T) {
	e := newTestEnv(t)
	cat, _ := e.content.CreateCategory(e.ctx, "Phrasal Verbs")
	if cat.Description != "Nueva carpeta" || cat.Color != "bg-slate-500" {
		t.Fatalf("category defaults: %+v", cat)
	}
	topic, _ := e.content.CreateTopic(e.ctx, cat.ID, "Get")
	if topic.Description != "Pendiente de contenido" || topic.Icon != model.IconBookOpen {
		t.Fatalf("topic defaults: %+v", topic)
	}

	q1, err := e.content.AddQuestion(e.ctx, cat.ID, topic.ID, QuestionInput{Text: "get ___", CorrectAnswer: "up", Options: []string{"up", " ", "on"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(q1.Options) != 2 || q1.ID == "" {
		t.Fatalf("question: %+v", q1)
	}
	q2, _ := e.content.AddQuestion(e.ctx, cat.ID, topic.ID, QuestionInput{Text: "get ___ with", CorrectAnswer: "along"})
	if _, err := e.content.AddQuestion(e.ctx, cat.ID, topic.ID, QuestionInput{Text: "no answer"}); !errors.Is(err, util.ErrInvalidQuestion) {
		t.Fatalf("invalid question: %v", err)
	}

	_ = e.content.MoveQuestion(e.ctx, cat.ID, topic.ID, q2.ID, "up")
	stored, _ := e.content.Topic(topic.ID)
	if stored.ManualQuestions[0].ID != q2.ID {
		t.Fatal("question did not move up")
	}
	_ = e.content.DeleteQuestion(e.ctx, cat.ID, topic.ID, q1.ID)
	stored, _ = e.content.Topic(topic.ID)
	if len(stored.ManualQuestions) != 1 {
		t.Fatalf("questions after delete: %d", len(stored.ManualQuestions))
	}

	saved, err := e.content.SaveTopic(e.ctx, cat.ID, topic.ID, TopicInput{Title: "Get", Icon: "Unicorn", ManualTheory: "# Get"})
	if err != nil || saved.Icon != model.IconBookOpen || saved.HasQuestions() {
		t.Fatalf("save topic: %+v %v", saved, err)
	}
	if err := e.content.DeleteCategory(e.ctx, cat.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := e.content.Topic(topic.ID); !errors.Is(err, util.ErrTopicNotFound) {
		t.Fatalf("topic should go with its category: %v", err)
	}
}

func TestStudentReport(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 10)
	e.practiceBlock(t, "2", topic.ID, 0, 40*time.Second)

	report, err := e.analytics.StudentReport("2")
	if err != nil {
		t.Fatal(err)
	}
	if report.Stats.PracticeCount != 1 || report.Stats.AverageAccuracy != 1 {
		t.Fatalf("stats: %+v", report.Stats)
	}
	if report.TotalSeconds != 40 || report.SecondsByActivity[model.ActivityPractice] != 40 {
		t.Fatalf("seconds: %d %v", report.TotalSeconds, report.SecondsByActivity)
	}
	page := e.analytics.History("2", 1, 10)
	if page.Total != 1 {
		t.Fatalf("history total: %d", page.Total)
	}
}

func TestFailedFinishKeepsAttemptOpen(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 10)
	block := 0
	if _, err := e.assessments.StartPractice(e.ctx, "2", topic.ID, &block); err != nil {
		t.Fatal(err)
	}
	e.answerAll(t, "2", "yes")
	e.clock.Advance(time.Minute)

	e.store.failWrites(util.KeyProgress)
	if _, err := e.assessments.Finish(e.ctx, "2"); err == nil {
		t.Fatal("finish succeeded while history could not be written")
	}

	user, _ := e.users.FindByID("2")
	if user.XP != 120 {
		t.Fatalf("xp after failed finish: got=%d want=120", user.XP)
	}
	if n := len(e.progress.ListByUser("2")); n != 0 {
		t.Fatalf("progress records: %d", n)
	}
	if e.completions.IsCompleted("2", topic.ID, 0) {
		t.Fatal("block marked completed")
	}
	for _, m := range e.missions.List() {
		if m.ID == "m1" && m.Progress != 0 {
			t.Fatalf("mission advanced: %+v", m)
		}
	}
	if n := len(e.sessions.ListByUser("2")); n != 0 {
		t.Fatalf("study sessions: %d", n)
	}
	if state := e.assessments.State("2"); state.View != assessment.ViewPractice || state.Answered != 10 {
		t.Fatalf("state after failed finish: view=%s answered=%d", state.View, state.Answered)
	}

	e.store.failWrites("")
	e.clock.Advance(5 * time.Second)
	result, err := e.assessments.Finish(e.ctx, "2")
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if result.Score != 10 || result.XPEarned != 100 || result.TimeTakenSeconds != 65 {
		t.Fatalf("retry result: %+v", result)
	}
	user, _ = e.users.FindByID("2")
	if user.XP != 220 {
		t.Fatalf("xp after retry: got=%d want=220", user.XP)
	}
	if n := len(e.progress.ListByUser("2")); n != 1 {
		t.Fatalf("progress records after retry: %d", n)
	}
	if !e.completions.IsCompleted("2", topic.ID, 0) {
		t.Fatal("block not completed after retry")
	}
	sessions := e.sessions.ListByUser("2")
	if len(sessions) != 1 || sessions[0].DurationSeconds != 65 {
		t.Fatalf("sessions after retry: %+v", sessions)
	}
}

func TestRewardWriteFailureStillRecordsHistory(t *testing.T) {
	e := newTestEnv(t)
	_, topic := e.addTopic(t, 10)
	block := 0
	if _, err := e.assessments.StartPractice(e.ctx, "2", topic.ID, &block); err != nil {
		t.Fatal(err)
	}
	e.answerAll(t, "2", "yes")
	e.clock.Advance(time.Minute)

	e.store.failWrites(util.KeyMissions)
	result, err := e.assessments.Finish(e.ctx, "2")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if result.XPEarned != 100 || result.MissionXP != 0 {
		t.Fatalf("result: %+v", result)
	}
	if n := len(e.progress.ListByUser("2")); n != 1 {
		t.Fatalf("progress records: %d", n)
	}
	if state := e.assessments.State("2"); state.View != assessment.ViewResults || state.Result == nil {
		t.Fatalf("state: view=%s", state.View)
	}
	if _, err := e.assessments.Finish(e.ctx, "2"); !errors.Is(err, util.ErrNoActiveActivity) {
		t.Fatalf("second finish: %v", err)
	}
}
