package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/ManuelArango1229/purchase-order-softdev/configs"
	httpadapter "github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/http"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/http/middleware"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/kafka"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/queue"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/repo"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/adapter/rest"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/logging"
	"github.com/ManuelArango1229/purchase-order-softdev/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile)

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	cancel()

	logger.Info("purchase-api: starting up")

	// init rabbitmq producer
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}
	producer, err := queue.NewRabbitProducer(ch, cfg.Rabbit.Exchange, cfg.Rabbit.RoutingKey, cfg.Rabbit.Queue)
	if err != nil {
		return nil, nil, err
	}

	// peer-service clients
	customers := rest.NewCustomerClient(cfg.Services.CustomerBaseURL, cfg.Services.Timeout)
	catalog := rest.NewProductClient(cfg.Services.ProductBaseURL, cfg.Services.Timeout)

	// infra
	orderRepo := repo.NewMySQLOrderRepo(db)

	// fulfillment status feed
	stopKafka := setupStatusListener(cfg, orderRepo)

	// usecases + handlers + router
	placeUC := usecase.NewPlaceOrder(customers, catalog, orderRepo, producer)
	queryUC := usecase.NewGetOrderDetails(orderRepo)
	h := httpadapter.NewOrderHandler(placeUC, queryUC)
	th := httpadapter.NewTokenHandler(cfg)
	auth := middleware.NewAuthz(cfg)
	router := httpadapter.NewRouter(h, th, auth)

	cleanup := func() {
		stopKafka()
		_ = ch.Close()
		_ = conn.Close()
		_ = db.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupStatusListener(cfg configs.Config, orderRepo *repo.MySQLOrderRepo) func() {
	if len(cfg.Kafka.Brokers) == 0 {
		return func() {}
	}

	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		panic(err)
	}

	h := kafka.NewOrderStatusChangedHandler(orderRepo)
	log := logging.New("kafka")
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.StatusTopic}, h.Handle, log)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			log.Error("status consumer stopped", "err", err)
		}
	}()

	return func() {
		cancel()
		_ = grp.Close()
	}
}
