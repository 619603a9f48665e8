// @title English Quest 后端 API
// @version 1.0
// @description English Quest 英语学习闯关平台的后端服务器。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"path/filepath"

	"english_quest_backend/internal/app"
	"english_quest_backend/internal/config"
	"english_quest_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	resetSeed := flag.Bool("reset-seed", false, "启动前用内置默认数据覆盖存储")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly
	cfg.ResetSeed = *resetSeed

	application, err := app.NewApp(cfg, filepath.Join(*configDir, "config.yaml"))
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	// 迁移完成后直接退出
	if *migrateOnly {
		logger.Log.Info("Database migration finished, exiting")
		application.Close()
		return
	}

	if err := application.Run(); err != nil {
		logger.Log.Error("Server stopped with error")
		log.Fatal(err)
	}
}
