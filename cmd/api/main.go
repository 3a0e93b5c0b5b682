package main

import (
	"log"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Member{},
		&model.Item{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//デモデータ投入
	if os.Getenv("SEED_DEMO") == "1" {
		if err := db.SeedDemo(gormDB); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	//Tx境界とRepository
	tx := infraRepo.NewTxManagerGorm(gormDB, cfg.LockTimeout)

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(tx, &uuidGenerator{}, &realClock{}, cfg)
	itemUC := usecase.NewItemUsecase(tx)

	//Handler生成
	orderH := handler.NewOrderHandler(orderUC)
	itemH := handler.NewItemHandler(itemUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, orderH, itemH); err != nil {
		log.Fatalf("server: %v", err)
	}
}
