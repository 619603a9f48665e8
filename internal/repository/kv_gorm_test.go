package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteStore(t *testing.T) *repository.GormKVStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewGormKVStore(db)
}

func TestGormKVStoreUpsert(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	if _, found, err := store.Get(ctx, "theme"); err != nil || found {
		t.Fatalf("missing key: found=%v err=%v", found, err)
	}
	if err := store.Set(ctx, "theme", `"light"`); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "theme", `"dark"`); err != nil {
		t.Fatal(err)
	}
	v, found, err := store.Get(ctx, "theme")
	if err != nil || !found || v != `"dark"` {
		t.Fatalf("got=%q found=%v err=%v", v, found, err)
	}
}

func TestSessionRepositoryOnGorm(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	repo, err := repository.NewSessionRepository(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	_ = repo.AppendSession(ctx, model.StudySession{ID: "s1", UserID: "2", ActivityType: model.ActivityStudy, DurationSeconds: 30})
	_ = repo.AppendSession(ctx, model.StudySession{ID: "s2", UserID: "2", ActivityType: model.ActivityExam, DurationSeconds: 90})
	_ = repo.AppendSession(ctx, model.StudySession{ID: "s3", UserID: "2", ActivityType: model.ActivityStudy, DurationSeconds: 15})

	reloaded, _ := repository.NewSessionRepository(ctx, store)
	totals := reloaded.SecondsByActivity("2")
	if totals[model.ActivityStudy] != 45 || totals[model.ActivityExam] != 90 {
		t.Fatalf("totals: %v", totals)
	}
	if got := reloaded.ListByUser("2"); len(got) != 3 || got[0].ID != "s3" {
		t.Fatalf("sessions: %+v", got)
	}
}
