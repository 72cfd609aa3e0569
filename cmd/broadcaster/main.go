package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/api/dto"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/api/handlers/broadcast"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/api/router"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/api/server"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/config"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/dispatch"
	broadcastmsg "github.com/EdilKulzhabay/tochkaLi-sub001/internal/rabbitmq/handlers/broadcast"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/rabbitmq/queue"
	broadcastrepo "github.com/EdilKulzhabay/tochkaLi-sub001/internal/repository/broadcast"
	userrepo "github.com/EdilKulzhabay/tochkaLi-sub001/internal/repository/user"
	broadcastsvc "github.com/EdilKulzhabay/tochkaLi-sub001/internal/service/broadcast"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/worker"
	"github.com/EdilKulzhabay/tochkaLi-sub001/pkg/email"
	"github.com/EdilKulzhabay/tochkaLi-sub001/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewBroadcastQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create broadcast queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	jobs := broadcastrepo.NewRepository(db)
	users := userrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	var bot *telegram.Client
	if cfg.Telegram.Endpoint != "" {
		bot, err = telegram.NewClientWithEndpoint(cfg.Telegram.Token, cfg.Telegram.Endpoint)
	} else {
		bot, err = telegram.NewClient(cfg.Telegram.Token)
	}
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create telegram client")
	}
	zlog.Logger.Info().Str("bot", bot.Username()).Msg("authorized on telegram")

	notifiers := map[string]broadcastsvc.Notifier{
		"telegram": bot,
	}

	if cfg.Email.SMTPHost != "" {
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
		}

		mailer := email.NewClient(
			cfg.Email.SMTPHost,
			smtpPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)
		if cfg.Email.Subject != "" {
			mailer = mailer.WithSubject(cfg.Email.Subject)
		}

		notifiers["email"] = mailer
	}

	dispatcher := dispatch.NewDispatcher(bot, cfg.Broadcast.Delay, cfg.Broadcast.RateLimitPause)

	service := broadcastsvc.NewService(jobs, users, q, dispatcher, notifiers, rdb, broadcastsvc.ReportOptions{
		Channel: cfg.Broadcast.ReportChannel,
		To:      cfg.Broadcast.ReportTo,
	})

	resumed, err := service.ResumeInterrupted(ctx, cfg.Retry)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to resume unfinished broadcast jobs")
	} else if resumed > 0 {
		zlog.Logger.Info().Int("jobs", resumed).Msg("resumed unfinished broadcast jobs")
	}

	broadcastHandler := broadcast.NewHandler(service, dto.NewValidator(), cfg)
	messageHandler := broadcastmsg.NewHandler(service, q)

	broadcaster := worker.NewBroadcaster(q, messageHandler, service)

	workersDone := make(chan struct{})
	go func() {
		broadcaster.Run(ctx, cfg.Retry, cfg.Workers.Count)
		close(workersDone)
	}()

	r := router.New(broadcastHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	select {
	case <-workersDone:
	case <-time.After(30 * time.Second):
		zlog.Logger.Warn().Msg("broadcast still running, it resumes from its cursor on next start")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
