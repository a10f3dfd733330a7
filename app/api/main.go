package main

import (
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/nftmint/app/bootstrap"
	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/ethereum"
	"github.com/x-xyz/nftmint/base/log"
	bValidator "github.com/x-xyz/nftmint/base/validator"
	"github.com/x-xyz/nftmint/domain"
	mmiddleware "github.com/x-xyz/nftmint/middleware"
	"github.com/x-xyz/nftmint/service/cache"
	"github.com/x-xyz/nftmint/service/chain"
	"github.com/x-xyz/nftmint/service/chain/contract"
	"github.com/x-xyz/nftmint/service/ens"
	"github.com/x-xyz/nftmint/service/pinning"
	auth_delivery "github.com/x-xyz/nftmint/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/nftmint/stores/auth/delivery/http/middleware"
	auth_repository "github.com/x-xyz/nftmint/stores/auth/repository"
	auth_usecase "github.com/x-xyz/nftmint/stores/auth/usecase"
	ens_delivery "github.com/x-xyz/nftmint/stores/ens/delivery/http"
	file_delivery "github.com/x-xyz/nftmint/stores/file/delivery/http"
	file_usecase "github.com/x-xyz/nftmint/stores/file/usecase"
	hc_delivery "github.com/x-xyz/nftmint/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftmint/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftmint/stores/healthcheck/usecase"
	mint_delivery "github.com/x-xyz/nftmint/stores/mint/delivery/http"
	mint_usecase "github.com/x-xyz/nftmint/stores/mint/usecase"
	nft_delivery "github.com/x-xyz/nftmint/stores/nft/delivery/http"
	nft_usecase "github.com/x-xyz/nftmint/stores/nft/usecase"
	payment_delivery "github.com/x-xyz/nftmint/stores/payment/delivery/http"
	payment_usecase "github.com/x-xyz/nftmint/stores/payment/usecase"
	token_index_repository "github.com/x-xyz/nftmint/stores/token_index/repository/mongo"
	token_index_usecase "github.com/x-xyz/nftmint/stores/token_index/usecase"

	_ "github.com/x-xyz/nftmint/app/api/docs"
)

func init() {
	bootstrap.LoadConfig("infra/configs/config.yaml")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.shutdownTimeout", 10*time.Second)
	viper.SetDefault("server.bodyLimit", "20M")
	viper.SetDefault("nft.strategy", string(domain.NftStrategyProbe))
	viper.SetDefault("auth.signingMsg", "Sign in to nftmint as %s")
	viper.SetDefault("auth.nonceTtl", 10*time.Minute)
	viper.SetDefault("auth.nonceCacheMB", 8)
	bootstrap.SetupObservability("nftmint-api")
}

//	@title			nftmint API
//	@version		1.0
//	@description	Upload, metadata, mint and listing endpoints of the nftmint demo.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve a token from #/auth/post_auth_sign and send it as `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(viper.GetString("server.bodyLimit")))
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	mongoClient, q := bootstrap.Mongo(context)
	redisCache := bootstrap.Redis(context)
	cacheProvider := bootstrap.CacheProvider("api", redisCache)

	// pinning provider is built once here and owned by the file usecase
	var pinner pinning.Service
	shell := bootstrap.IpfsShell()
	switch viper.GetString("pinning.provider") {
	case "node":
		if shell == nil {
			context.Panic("pinning.provider node needs ipfs.nodeUrl")
		}
		pinner = pinning.NewIpfsNode(shell)
	default:
		pinner = pinning.NewPinata(pinning.PinataCfg{
			Endpoint:  viper.GetString("pinata.endpoint"),
			Jwt:       viper.GetString("pinata.jwt"),
			ApiKey:    viper.GetString("pinata.apiKey"),
			ApiSecret: viper.GetString("pinata.apiSecret"),
			Timeout:   viper.GetDuration("pinata.timeout"),
		})
	}

	contractInfo := bootstrap.ContractInfo()
	backend, chainClient := bootstrap.Chain(context)
	minter := contract.NewMinter(chainClient, contractInfo.Address)

	var ensBackend bind.ContractBackend = backend
	if rpc := viper.GetString("ens.rpc"); rpc != "" {
		// names registered on mainnet need a mainnet endpoint
		mainnet, err := chain.Dial(context, rpc)
		if err != nil {
			context.WithField("err", err).Panic("chain.Dial failed")
		}
		ensBackend = mainnet
	}
	ensResolver := ens.New(ensBackend, bootstrap.NewCache(cacheProvider, "nftmint", viper.GetDuration("cache.ensTtl")))

	webResource := bootstrap.WebResource(context, shell, nil)
	metadata := bootstrap.Metadata(webResource, cacheProvider)
	resolver := nft_usecase.NewTokenResolver(minter, metadata)

	enumCfg := &nft_usecase.EnumeratorCfg{
		Strategy:         domain.NftStrategy(viper.GetString("nft.strategy")),
		MaxTokensToCheck: viper.GetUint64("nft.maxTokensToCheck"),
		Minter:           minter,
		Resolver:         resolver,
		LogScan: &nft_usecase.LogScanCfg{
			Client:        backend,
			Contract:      contractInfo.Address,
			StartBlock:    viper.GetUint64("chain.startBlock"),
			MaxBlockRange: viper.GetUint64("chain.maxBlockRange"),
			Resolver:      resolver,
		},
	}
	if q != nil {
		enumCfg.Index = &nft_usecase.IndexCfg{
			ChainId:  contractInfo.ChainId,
			Contract: contractInfo.Address,
			TokenIndex: token_index_usecase.NewTokenIndexUseCase(&token_index_usecase.TokenIndexUseCaseCfg{
				Repo: token_index_repository.NewTokenIndexMongoRepo(q),
			}),
			Resolver: resolver,
		}
	}
	enumerator, err := nft_usecase.NewEnumerator(enumCfg)
	if err != nil {
		context.WithFields(log.Fields{"err": err, "strategy": enumCfg.Strategy}).Panic("nft_usecase.NewEnumerator failed")
	}

	// construct usecases and deliveries
	file := file_usecase.New(file_usecase.Cfg{
		Pinning: pinner,
		Gateway: bootstrap.GatewayUrl(),
	})
	nft := nft_usecase.NewNftUseCase(&nft_usecase.NftUseCaseCfg{
		Minter:        minter,
		Enumerator:    enumerator,
		Resolver:      resolver,
		NextIdCeiling: viper.GetUint64("nft.nextIdCeiling"),
	})
	mint := mint_usecase.NewMintUseCase(&mint_usecase.MintUseCaseCfg{
		Minter:         minter,
		Chain:          chainClient,
		Contract:       contractInfo,
		Ens:            ensResolver,
		ReceiptTimeout: viper.GetDuration("chain.receiptTimeout"),
	})
	payment, err := payment_usecase.NewPaymentUseCase(&payment_usecase.PaymentUseCaseCfg{
		ChainId:      contractInfo.ChainId,
		Client:       backend,
		Merchant:     domain.Address(viper.GetString("payment.merchant")),
		MinAmountWei: minAmountWei(context),
	})
	if err != nil {
		// without a merchant every payment would be judged against the zero address
		context.WithField("err", err).Warn("payment verification disabled")
	}
	jwtSecret := viper.GetString("auth.jwtSecret")
	if err := auth_usecase.CheckJwtSecret(jwtSecret); err != nil {
		if viper.GetString("chain.minterKey") != "" {
			// a guessable secret would let anyone mint with the server key
			context.WithField("err", err).Panic("auth_usecase.CheckJwtSecret failed")
		}
		jwtSecret = uuid.NewString()
		context.WithField("err", err).Warn("using a random jwt secret, tokens do not survive restarts")
	}
	var nonces domain.NonceRepo
	if redisCache != nil {
		nonces = auth_repository.NewRedisNonceRepo(redisCache)
	} else {
		nonces = auth_repository.NewLocalNonceRepo(viper.GetInt("auth.nonceCacheMB"))
	}
	auth := auth_usecase.New(&auth_usecase.Cfg{
		JwtSecret:          jwtSecret,
		SigningMsgTemplate: viper.GetString("auth.signingMsg"),
		TokenTtl:           viper.GetDuration("auth.tokenTtl"),
		Nonces:             nonces,
		NonceTtl:           viper.GetDuration("auth.nonceTtl"),
	})
	minters := []domain.Address{}
	for _, a := range viper.GetStringSlice("auth.minters") {
		minters = append(minters, domain.Address(a))
	}
	if len(minters) == 0 && viper.GetString("chain.minterKey") != "" {
		context.Warn("auth.minters is empty, every signed-in wallet may mint")
	}
	authMiddleware := auth_middleware.New(auth, minters)

	var listCache cache.Service
	if ttl := viper.GetDuration("cache.listTtl"); ttl > 0 {
		listCache = bootstrap.NewCache(cacheProvider, "nftmint", ttl)
	}

	hcRepo := hc_repo.New(nil, redisCache)
	if mongoClient != nil {
		hcRepo = hc_repo.New(mongoClient, redisCache)
	}

	hc_delivery.New(e, hc_usecase.New(hcRepo))
	auth_delivery.New(e, auth)
	file_delivery.New(e, file)
	nft_delivery.New(e, nft, listCache)
	mint_delivery.New(e, mint, contractInfo, authMiddleware)
	if payment != nil {
		payment_delivery.New(e, payment)
	}
	ens_delivery.New(e, ensResolver)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	sc, cancel := ctx.WithTimeout(context, viper.GetDuration("server.shutdownTimeout"))
	defer cancel()
	if err := e.Shutdown(sc); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func minAmountWei(c ctx.Ctx) *big.Int {
	eth := viper.GetString("payment.minAmountEth")
	if eth == "" {
		return nil
	}
	wei, err := ethereum.EthToWei(eth)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "payment.minAmountEth": eth}).Panic("ethereum.EthToWei failed")
	}
	return wei
}
