// Package bootstrap holds the wiring shared by the api and indexer binaries.
package bootstrap

import (
	"strings"
	"time"

	"cloud.google.com/go/storage"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/api/option"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/base/database/mongoclient"
	"github.com/x-xyz/nftmint/base/database/redisclient"
	"github.com/x-xyz/nftmint/base/ethereum"
	"github.com/x-xyz/nftmint/base/log"
	"github.com/x-xyz/nftmint/base/metrics"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/cache"
	"github.com/x-xyz/nftmint/service/cache/provider"
	"github.com/x-xyz/nftmint/service/cache/provider/layered"
	"github.com/x-xyz/nftmint/service/cache/provider/local"
	redisProvider "github.com/x-xyz/nftmint/service/cache/provider/redis"
	"github.com/x-xyz/nftmint/service/chain"
	"github.com/x-xyz/nftmint/service/query"
	"github.com/x-xyz/nftmint/service/redis"
	metadata_usecase "github.com/x-xyz/nftmint/stores/metadata/usecase"
	web_resource_repository "github.com/x-xyz/nftmint/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/nftmint/stores/web_resource/usecase"
)

const (
	DefaultContract = "0x522b5aAdE25E0f5795AB91A9447564b3978b9335"
	DefaultChainId  = 11155111
	DefaultRpc      = "https://rpc.sepolia.org"
)

// LoadConfig reads the yaml at --config (defaultPath when unset). Every key can be
// overridden from the environment, "chain.rpc" becomes CHAIN_RPC.
func LoadConfig(defaultPath string) {
	path := pflag.String("config", defaultPath, "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log.level", "info")
	viper.SetDefault("chain.chainId", DefaultChainId)
	viper.SetDefault("chain.rpc", DefaultRpc)
	viper.SetDefault("chain.contract", DefaultContract)
	viper.SetDefault("chain.maxInflight", 4)
	viper.SetDefault("chain.explorerUrl", "https://sepolia.etherscan.io")
	viper.SetDefault("chain.marketplaceUrl", "https://testnets.opensea.io/assets/sepolia")
	viper.SetDefault("cache.localSizeMB", 64)
	viper.SetDefault("cache.metadataTtl", 24*time.Hour)
	viper.SetDefault("cache.ensTtl", time.Hour)
	viper.SetDefault("cache.listTtl", 30*time.Second)
	viper.SetDefault("webResource.timeout", 10*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

// SetupObservability installs the zap logger and the datadog client
func SetupObservability(app string) {
	if err := log.Setup(viper.GetString("log.level"), viper.GetBool("debug")); err != nil {
		panic(err)
	}
	if err := metrics.Setup(metrics.Config{
		Host:    viper.GetString("metrics.host"),
		Port:    viper.GetInt("metrics.port"),
		EnvName: viper.GetString("metrics.env"),
		AppName: app,
	}); err != nil {
		log.Log().WithField("err", err).Warn("metrics.Setup failed, falling back to log client")
	}
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func ContractInfo() *domain.ContractInfo {
	return &domain.ContractInfo{
		ChainId:        domain.ChainId(viper.GetInt64("chain.chainId")),
		Address:        domain.Address(viper.GetString("chain.contract")),
		ExplorerUrl:    strings.TrimSuffix(viper.GetString("chain.explorerUrl"), "/"),
		MarketplaceUrl: strings.TrimSuffix(viper.GetString("chain.marketplaceUrl"), "/"),
	}
}

// Mongo returns nil when mongo.uri is empty
func Mongo(c ctx.Ctx) (*mongoclient.Client, query.Mongo) {
	uri := viper.GetString("mongo.uri")
	if uri == "" {
		c.Info("mongo not configured")
		return nil, nil
	}
	c.Info("init mongo")
	client := mongoclient.MustConnectMongoClient(mongoclient.Cfg{
		Uri:                uri,
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	return client, query.New(client, viper.GetBool("mongo.transaction"))
}

// Redis returns nil when redis.uri is empty
func Redis(c ctx.Ctx) redis.Service {
	uri := viper.GetString("redis.uri")
	if uri == "" {
		c.Info("redis not configured")
		return nil
	}
	c.Info("init redis cache")
	pool := redisclient.MustConnectRedis(uri, viper.GetString("redis.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
		Retry:          true,
	})
	return redis.New(viper.GetString("redis.name"), pool)
}

// CacheProvider stacks the in-process cache in front of redis when there is one
func CacheProvider(name string, r redis.Service) provider.Provider {
	l := local.New(name, viper.GetInt("cache.localSizeMB"))
	if r == nil {
		return l
	}
	return layered.New(l, redisProvider.New(r))
}

func NewCache(p provider.Provider, pfx string, ttl time.Duration) cache.Service {
	return cache.New(cache.Cfg{
		Ttl:      ttl,
		Pfx:      pfx,
		Provider: p,
	})
}

// Chain dials chain.rpc and signs with chain.minterKey when it is set
func Chain(c ctx.Ctx) (*ethereum.ThrottledClient, chain.Client) {
	rpc := viper.GetString("chain.rpc")
	ethClient, err := chain.Dial(c, rpc)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "rpc": rpc}).Panic("chain.Dial failed")
	}
	backend := ethereum.NewThrottledClient(ethClient, viper.GetInt("chain.maxInflight"))

	cfg := &chain.ClientCfg{
		ChainId: viper.GetInt64("chain.chainId"),
		Backend: backend,
	}
	if key := viper.GetString("chain.minterKey"); key != "" {
		signer, addr, err := ethereum.LoadPrivateKey(key)
		if err != nil {
			c.WithField("err", err).Panic("ethereum.LoadPrivateKey failed")
		}
		c.WithField("minter", addr.Hex()).Info("minter key loaded")
		cfg.Signer = signer
	} else {
		c.Warn("chain.minterKey not set, minting disabled")
	}
	return backend, chain.NewClient(cfg)
}

func IpfsShell() *ipfsapi.Shell {
	if url := viper.GetString("ipfs.nodeUrl"); url != "" {
		return ipfsapi.NewShell(url)
	}
	return nil
}

// WebResource reads http, ipfs, data and ar uris. ipfs goes through the local node
// when ipfs.nodeUrl is set, otherwise through the pinata gateway.
func WebResource(c ctx.Ctx, shell *ipfsapi.Shell, gcs *storage.Client) domain.WebResourceUseCase {
	httpCfg := web_resource_repository.HttpReaderCfg{
		Timeout:  viper.GetDuration("webResource.timeout"),
		MaxBytes: viper.GetInt64("webResource.maxBytes"),
	}

	var ipfsReader domain.WebResourceReaderRepository
	if shell != nil {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(shell, httpCfg.Timeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(GatewayUrl()+"/ipfs", httpCfg)
	}

	cfg := &web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(httpCfg),
		IpfsReader:    ipfsReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
		ArUriReader:   web_resource_repository.NewArReaderRepo(httpCfg),
		GatewayHosts:  append(viper.GetStringSlice("webResource.gatewayHosts"), viper.GetString("pinata.gateway")),
	}
	if gcs != nil {
		writer, err := web_resource_repository.NewCloudStorageWriterRepo(&web_resource_repository.CloudStorageWriterRepoCfg{
			Timeout:    viper.GetDuration("gcs.timeout"),
			Client:     gcs,
			BucketName: viper.GetString("gcs.bucket"),
			Url:        viper.GetString("gcs.url"),
		})
		if err != nil {
			c.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
		}
		cfg.CloudStorageWriter = writer
	}
	return web_resource_usecase.NewWebResourceUseCase(cfg)
}

// GatewayUrl is pinata.gateway as an https url without trailing slash
func GatewayUrl() string {
	gw := strings.TrimSuffix(viper.GetString("pinata.gateway"), "/")
	if gw == "" {
		return "https://gateway.pinata.cloud"
	}
	if !strings.HasPrefix(gw, "http://") && !strings.HasPrefix(gw, "https://") {
		gw = "https://" + gw
	}
	return gw
}

// Storage returns nil when gcs.bucket is empty
func Storage(c ctx.Ctx) *storage.Client {
	if viper.GetString("gcs.bucket") == "" {
		return nil
	}
	opts := []option.ClientOption{}
	if f := viper.GetString("gcs.credentialsFile"); f != "" {
		opts = append(opts, option.WithCredentialsFile(f))
	}
	client, err := storage.NewClient(c, opts...)
	if err != nil {
		c.WithField("err", err).Panic("storage.NewClient failed")
	}
	return client
}

func Metadata(web domain.WebResourceUseCase, p provider.Provider) domain.MetadataUseCase {
	return metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		WebResource: web,
		Cache:       NewCache(p, "nftmint", viper.GetDuration("cache.metadataTtl")),
	})
}
