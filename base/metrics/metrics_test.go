package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordCli struct {
	sync.Mutex
	names []string
	tags  [][]string
}

func (r *recordCli) record(name string, tags []string) error {
	r.Lock()
	defer r.Unlock()
	r.names = append(r.names, name)
	r.tags = append(r.tags, tags)
	return nil
}

func (r *recordCli) Gauge(name string, value float64, tags []string, rate float64) error {
	return r.record(name, tags)
}

func (r *recordCli) Count(name string, value int64, tags []string, rate float64) error {
	return r.record(name, tags)
}

func (r *recordCli) Histogram(name string, value float64, tags []string, rate float64) error {
	return r.record(name, tags)
}

func (r *recordCli) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	return r.record(name, tags)
}

func TestBump(t *testing.T) {
	require.NoError(t, Setup(Config{EnvName: "test", AppName: "api"}))
	rec := &recordCli{}
	mu.Lock()
	cli = rec
	mu.Unlock()

	met := New("nft")
	met.BumpSum("probe.err", 1, "method", "ownerOf")
	met.BumpTime("enumerate.time").End()

	require.Equal(t, []string{"nft.probe.err", "nft.enumerate.time"}, rec.names)
	require.Contains(t, rec.tags[0], "method:ownerOf")
	require.Contains(t, rec.tags[0], "env:test")
	require.Contains(t, rec.tags[1], "app:api")
}

func TestParseTagDropsOdd(t *testing.T) {
	require.Equal(t, []string{"a:b"}, parseTag([]string{"a", "b", "c"}))
	require.Empty(t, parseTag(nil))
}
