package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/x-xyz/nftmint/base/log"
)

// buffer 10 metrics before sending to the agent
const bufferMetrics = 10

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// Config of the statsd agent. An empty Host keeps metrics in the debug log.
type Config struct {
	Host    string
	Port    int
	EnvName string
	AppName string
}

var (
	mu      sync.RWMutex
	cli     statsCli = &LogClient{}
	cfgTags []string
)

// Setup points every metrics.Service at the datadog agent. It is called once from main.
func Setup(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	cfgTags = []string{
		"host:", // drop the agent's host tag
		"env:" + cfg.EnvName,
		"app:" + cfg.AppName,
	}

	if cfg.Host == "" {
		cli = &LogClient{}
		return nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	c, err := statsd.New(addr, statsd.WithMaxMessagesPerPayload(bufferMetrics))
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("statsd.New failed")
		return err
	}
	log.Log().WithField("addr", addr).Info("datadog agent connected")
	cli = c
	return nil
}

func client() statsCli {
	mu.RLock()
	defer mu.RUnlock()
	return cli
}

func globalTags() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string{}, cfgTags...)
}
