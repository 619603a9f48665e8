// 手动重置存储中的部分集合为内置默认数据
//
// 主程序的 -reset-seed 会一次性重置全部集合；此脚本用于只重置某几个，
// 例如新学期清空任务进度而保留用户和课程内容。
//
// 用法: go run scripts/reset_seed.go -only missions,progress

package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"english_quest_backend/internal/config"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/util"
	"english_quest_backend/pkg/database"
	"english_quest_backend/pkg/logger"
)

type resetter interface {
	Reset(ctx context.Context) error
}

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	only := flag.String("only", "", "逗号分隔的集合名：users,categories,progress,sessions,completions,missions,preferences")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	logger.InitLogger(cfg)
	ctx := context.Background()

	var store repository.KVStore
	switch cfg.Store.Backend {
	case util.StoreGorm:
		db, err := database.InitDB(&cfg.Database, false)
		if err != nil {
			log.Fatalf("数据库连接失败: %v", err)
		}
		store = repository.NewGormKVStore(db)
	case util.StoreRedis:
		rdb, err := database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("Redis 连接失败: %v", err)
		}
		defer rdb.Close()
		store = repository.NewRedisKVStore(rdb)
	default:
		log.Fatalf("存储后端 %q 无需重置", cfg.Store.Backend)
	}

	constructors := map[string]func() (resetter, error){
		"users":       func() (resetter, error) { return repository.NewUserRepository(ctx, store) },
		"categories":  func() (resetter, error) { return repository.NewCategoryRepository(ctx, store) },
		"progress":    func() (resetter, error) { return repository.NewProgressRepository(ctx, store) },
		"sessions":    func() (resetter, error) { return repository.NewSessionRepository(ctx, store) },
		"completions": func() (resetter, error) { return repository.NewCompletionRepository(ctx, store) },
		"missions":    func() (resetter, error) { return repository.NewMissionRepository(ctx, store) },
		"preferences": func() (resetter, error) { return repository.NewPreferenceRepository(ctx, store) },
	}

	names := strings.Split(*only, ",")
	if *only == "" {
		names = []string{"users", "categories", "progress", "sessions", "completions", "missions", "preferences"}
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		newRepo, ok := constructors[name]
		if !ok {
			log.Fatalf("未知集合: %s", name)
		}
		repo, err := newRepo()
		if err != nil {
			log.Fatalf("加载 %s 失败: %v", name, err)
		}
		if err := repo.Reset(ctx); err != nil {
			log.Fatalf("重置 %s 失败: %v", name, err)
		}
		log.Printf("已重置 %s", name)
	}
}
