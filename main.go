package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/eventflow-app/eventflow-api/api"
	"github.com/eventflow-app/eventflow-api/common/config"
	"github.com/eventflow-app/eventflow-api/common/gorm"
	"github.com/eventflow-app/eventflow-api/common/mongo"
	"github.com/eventflow-app/eventflow-api/common/util"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()

	config.LoadConfig()

	if *isPushDB {
		gorm.Push_db()
		if !*isRunAfter {
			return
		}
	}

	gorm.InitGorm()
	mongo.InitMongo()

	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
		os.Exit(1)
	}

	util.InitDialer()

	api.InitFiber()
}
