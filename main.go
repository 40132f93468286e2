// @title Workload Survey API
// @version 1.0
// @description Personnel workload survey: questionnaire sessions, roster administration and scored reports.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"workload_survey/internal/app"
	"workload_survey/internal/config"
	"workload_survey/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	skipSync := flag.Bool("skip-sync", false, "启动时不从远端拉取数据，仅使用本地快照")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.SkipSync = *skipSync

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
