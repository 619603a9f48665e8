package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/util"
)

func intPtr(i int) *int { return &i }

type failingStore struct {
	*repository.MemoryKVStore
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestUserRepositoryFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()
	_ = store.Set(ctx, util.KeyUsers, "{not json")

	repo, err := repository.NewUserRepository(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(repo.List()); got != 5 {
		t.Fatalf("seed users: got=%d want=5", got)
	}
	u, err := repo.FindByUsername("  ADMIN ")
	if err != nil || u.ID != "1" {
		t.Fatalf("case-insensitive lookup: %v %v", u, err)
	}
	if _, err := repo.FindByUsername("nobody"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("unknown user: got %v", err)
	}
}

func TestUserRepositoryWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()
	repo, _ := repository.NewUserRepository(ctx, store)

	if err := repo.Create(ctx, &model.User{ID: "9", Name: "New", Username: "Student"}); !errors.Is(err, util.ErrUsernameTaken) {
		t.Fatalf("duplicate username: got %v", err)
	}
	if err := repo.Create(ctx, &model.User{ID: "9", Name: "New One", Username: "newone"}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Modify(ctx, "9", func(u *model.User) error { u.XP = 42; return nil }); err != nil {
		t.Fatal(err)
	}

	reloaded, _ := repository.NewUserRepository(ctx, store)
	u, err := reloaded.FindByID("9")
	if err != nil || u.XP != 42 {
		t.Fatalf("reloaded user: %+v %v", u, err)
	}
}

func TestFailedPersistLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	repo, _ := repository.NewUserRepository(ctx, failingStore{repository.NewMemoryKVStore()})

	if _, err := repo.Modify(ctx, "2", func(u *model.User) error { u.XP = 9999; return nil }); err == nil {
		t.Fatal("expected persist error")
	}
	u, _ := repo.FindByID("2")
	if u.XP != 120 {
		t.Fatalf("xp changed despite failed write: %d", u.XP)
	}
}

func TestTopByXP(t *testing.T) {
	ctx := context.Background()
	repo, _ := repository.NewUserRepository(ctx, repository.NewMemoryKVStore())
	top := repo.TopByXP(3)
	want := []string{"5", "3", "4"}
	for i, id := range want {
		if top[i].ID != id {
			t.Fatalf("rank %d: got=%s want=%s", i, top[i].ID, id)
		}
	}
}

func TestBestScorePerBlock(t *testing.T) {
	ctx := context.Background()
	repo, _ := repository.NewProgressRepository(ctx, repository.NewMemoryKVStore())
	for _, score := range []int{4, 9, 7} {
		_ = repo.Append(ctx, model.UserProgress{UserID: "2", TopicID: "t", Score: score, TotalQuestions: 10,
			Type: model.ActivityPractice, ExerciseIndex: intPtr(0)})
	}
	_ = repo.Append(ctx, model.UserProgress{UserID: "2", TopicID: "t", Score: 10, TotalQuestions: 10,
		Type: model.ActivityPractice, ExerciseIndex: intPtr(1)})
	_ = repo.Append(ctx, model.UserProgress{UserID: "3", TopicID: "t", Score: 10, TotalQuestions: 10,
		Type: model.ActivityPractice, ExerciseIndex: intPtr(0)})

	best, ok := repo.BestScore("2", "t", 0)
	if !ok || best != 9 {
		t.Fatalf("best score: got=%d ok=%v want=9", best, ok)
	}
	if _, ok := repo.BestScore("2", "t", 2); ok {
		t.Fatal("unplayed block should have no best score")
	}
}

func TestProgressStatsAndOrder(t *testing.T) {
	ctx := context.Background()
	repo, _ := repository.NewProgressRepository(ctx, repository.NewMemoryKVStore())
	if s := repo.Stats("2"); s.AverageAccuracy != 0 || s.PracticeCount != 0 {
		t.Fatalf("empty stats: %+v", s)
	}

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	_ = repo.Append(ctx, model.UserProgress{UserID: "2", TopicID: "a", Score: 5, TotalQuestions: 10, Type: model.ActivityPractice, Timestamp: base})
	_ = repo.Append(ctx, model.UserProgress{UserID: "2", TopicID: "b", Score: 20, TotalQuestions: 20, Type: model.ActivityExam, Timestamp: base.Add(time.Hour)})

	s := repo.Stats("2")
	if s.PracticeCount != 1 || s.ExamCount != 1 || s.AverageAccuracy != 0.75 {
		t.Fatalf("stats: %+v", s)
	}
	history := repo.ListByUser("2")
	if len(history) != 2 || history[0].TopicID != "b" {
		t.Fatalf("history should be newest first: %+v", history)
	}
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()
	repo, _ := repository.NewCompletionRepository(ctx, store)

	added, err := repo.MarkCompleted(ctx, "2", "t", 2)
	if err != nil || !added {
		t.Fatalf("first mark: added=%v err=%v", added, err)
	}
	added, err = repo.MarkCompleted(ctx, "2", "t", 2)
	if err != nil || added {
		t.Fatalf("second mark: added=%v err=%v", added, err)
	}
	_, _ = repo.MarkCompleted(ctx, "2", "t", 0)

	reloaded, _ := repository.NewCompletionRepository(ctx, store)
	got := reloaded.Completed("2", "t")
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("completed blocks: %v", got)
	}
}

func TestCategoryTopicEditing(t *testing.T) {
	ctx := context.Background()
	repo, _ := repository.NewCategoryRepository(ctx, repository.NewMemoryKVStore())
	cats, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	cat := cats[0]

	if err := repo.AddTopic(ctx, cat.ID, model.Topic{ID: cat.Topics[0].ID}); !errors.Is(err, util.ErrDuplicateTopic) {
		t.Fatalf("duplicate topic: got %v", err)
	}
	first, second := cat.Topics[0].ID, cat.Topics[1].ID
	if err := repo.MoveTopic(ctx, cat.ID, first, true); err != nil {
		t.Fatal(err)
	}
	if got, _ := repo.FindCategory(cat.ID); got.Topics[0].ID != first {
		t.Fatal("moving the first topic up should be a no-op")
	}
	_ = repo.MoveTopic(ctx, cat.ID, first, false)
	if got, _ := repo.FindCategory(cat.ID); got.Topics[0].ID != second || got.Topics[1].ID != first {
		t.Fatal("move down did not swap neighbours")
	}

	topic, catID, err := repo.FindTopic(first)
	if err != nil || catID != cat.ID {
		t.Fatalf("FindTopic: %v %s", err, catID)
	}
	topic.ManualQuestions[0].Text = "mutated"
	if again, _, _ := repo.FindTopic(first); again.ManualQuestions[0].Text == "mutated" {
		t.Fatal("FindTopic leaked the stored slice")
	}
}

func TestCategoryLookupsReturnIsolatedCopies(t *testing.T) {
	ctx := context.Background()
	repo, _ := repository.NewCategoryRepository(ctx, repository.NewMemoryKVStore())
	cats, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	catID, topicID := cats[0].ID, cats[0].Topics[0].ID

	cats[0].Title = "mutated"
	found, err := repo.FindCategory(catID)
	if err != nil || found.Title == "mutated" {
		t.Fatalf("List leaked the stored tree: %v", err)
	}
	found.Topics[0].Title = "mutated"
	if again, _ := repo.FindCategory(catID); again.Topics[0].Title == "mutated" {
		t.Fatal("FindCategory leaked the stored topics")
	}

	if _, err := repo.FindCategory("missing"); !errors.Is(err, util.ErrCategoryNotFound) {
		t.Fatalf("missing category: %v", err)
	}
	if _, _, err := repo.FindTopic("missing"); !errors.Is(err, util.ErrTopicNotFound) {
		t.Fatalf("missing topic: %v", err)
	}
	if topic, owner, err := repo.FindTopic(topicID); err != nil || owner != catID || topic.ID != topicID {
		t.Fatalf("FindTopic: %v owner=%s", err, owner)
	}
}

func TestThemePreference(t *testing.T) {
	ctx := context.Background()
	repo, _ := repository.NewPreferenceRepository(ctx, repository.NewMemoryKVStore())
	if repo.Theme() != util.ThemeLight {
		t.Fatalf("default theme: %s", repo.Theme())
	}
	if err := repo.SetTheme(ctx, "neon"); !errors.Is(err, util.ErrInvalidTheme) {
		t.Fatalf("invalid theme: %v", err)
	}
	_ = repo.SetTheme(ctx, util.ThemeDark)
	if repo.Theme() != util.ThemeDark {
		t.Fatal("theme not saved")
	}
}
