package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftmint/app/bootstrap"
	"github.com/x-xyz/nftmint/base/backoff"
	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/tracker"
	hcdomain "github.com/x-xyz/nftmint/domain/healthcheck"
	mmiddleware "github.com/x-xyz/nftmint/middleware"
	"github.com/x-xyz/nftmint/service/chain/contract"
	hc_delivery "github.com/x-xyz/nftmint/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftmint/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftmint/stores/healthcheck/usecase"
	token_index_repository "github.com/x-xyz/nftmint/stores/token_index/repository/mongo"
	token_index_usecase "github.com/x-xyz/nftmint/stores/token_index/usecase"
	tracker_state_repository "github.com/x-xyz/nftmint/stores/tracker_state/repository/mongo"
)

func init() {
	bootstrap.LoadConfig("infra/configs/indexer/config.yaml")
	viper.SetDefault("server.address", ":8081")
	viper.SetDefault("tracker.pollInterval", 12*time.Second)
	viper.SetDefault("tracker.followDistance", 2)
	viper.SetDefault("tracker.maxBlockRange", 5000)
	viper.SetDefault("tracker.workers", 8)
	viper.SetDefault("tracker.backoffStart", 5*time.Second)
	viper.SetDefault("tracker.backoffLimit", 5*time.Minute)
	bootstrap.SetupObservability("nftmint-indexer")
}

func main() {
	defer log.Sync()
	c, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()

	mongoClient, q := bootstrap.Mongo(c)
	if q == nil {
		c.Panic("the indexer needs mongo.uri")
	}
	redisCache := bootstrap.Redis(c)

	if err := tracker_state_repository.EnsureIndexes(c, q); err != nil {
		c.WithField("err", err).Panic("tracker state EnsureIndexes failed")
	}
	if err := token_index_repository.EnsureIndexes(c, q); err != nil {
		c.WithField("err", err).Panic("token index EnsureIndexes failed")
	}

	// start server to pass cloud run health check
	startEchoServer(hc_usecase.New(hc_repo.New(mongoClient, redisCache)))

	contractInfo := bootstrap.ContractInfo()
	backend, chainClient := bootstrap.Chain(c)
	minter := contract.NewMinter(chainClient, contractInfo.Address)

	webResource := bootstrap.WebResource(c, bootstrap.IpfsShell(), bootstrap.Storage(c))
	metadata := bootstrap.Metadata(webResource, bootstrap.CacheProvider("indexer", redisCache))
	tokenIndex := token_index_usecase.NewTokenIndexUseCase(&token_index_usecase.TokenIndexUseCaseCfg{
		Repo:   token_index_repository.NewTokenIndexMongoRepo(q),
		Minter: minter,
	})

	listeners := []tracker.MintListener{}
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		announcer, err := tracker.NewMintAnnouncer(&tracker.MintAnnouncerCfg{
			BotKey:    botKey,
			ChannelId: viper.GetString("discord.channelId"),
			Contract:  contractInfo,
			Metadata:  metadata,
		})
		if err != nil {
			c.WithField("err", err).Panic("tracker.NewMintAnnouncer failed")
		}
		listeners = append(listeners, announcer)
	}
	if viper.GetString("gcs.bucket") != "" {
		listeners = append(listeners, tracker.NewImageMirror(&tracker.ImageMirrorCfg{
			Metadata:    metadata,
			WebResource: webResource,
			TokenIndex:  tokenIndex,
		}))
	}

	handler := tracker.NewTransferHandler(&tracker.TransferHandlerCfg{
		ChainId:    contractInfo.ChainId,
		TokenIndex: tokenIndex,
		Listeners:  listeners,
		Workers:    viper.GetInt("tracker.workers"),
	})
	defer handler.Close()

	t := tracker.NewEventTracker(&tracker.EventTrackerCfg{
		ChainId:          contractInfo.ChainId,
		Client:           backend,
		Mongo:            q,
		TrackerStateRepo: tracker_state_repository.NewTrackerStateMongoRepo(q),
		ContractAddress:  common.HexToAddress(string(contractInfo.Address)),
		Handler:          handler,
		Tag:              viper.GetString("tracker.tag"),
		StartBlock:       viper.GetUint64("chain.startBlock"),
		PollInterval:     viper.GetDuration("tracker.pollInterval"),
		FollowDistance:   viper.GetUint64("tracker.followDistance"),
		MaxBlockRange:    viper.GetUint64("tracker.maxBlockRange"),
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		tracker.RunWithRestart(c, t, backoff.NewExponential(
			viper.GetDuration("tracker.backoffStart"),
			viper.GetDuration("tracker.backoffLimit"),
		))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	c.WithField("signal", sig).Info("received signal")
	cancel()
	<-done
	c.Info("indexer stopped")
}

func startEchoServer(hc hcdomain.HealthCheckUsecase) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(mmiddleware.InitMiddleware().AddContext())
	hc_delivery.New(e, hc)
	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("health server stopped")
		}
	}()
}
