/*
Package metrics wraps datadog-go statsd.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/x-xyz/nftmint/base/log"
)

const (
	// TagValueNA is used for tags whose values are not available.
	TagValueNA = "n/a"
)

// Ender is returned by BumpTime
type Ender interface {
	End()
}

type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type impl struct {
	pkgName string
}

// New creates a metrics client prefixing every key with pkgName.
// Tags are given as key, value pairs.
func New(pkgName string) Service {
	return &impl{pkgName: pkgName}
}

func (im *impl) key(k string) string {
	return im.pkgName + "." + k
}

func (im *impl) withTags(tags []string) []string {
	return append(globalTags(), parseTag(tags)...)
}

func (im *impl) BumpAvg(key string, val float64, tags ...string) {
	if err := client().Gauge(im.key(key), val, im.withTags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpAvg"}).Warn("bump failed")
	}
}

func (im *impl) BumpSum(key string, val float64, tags ...string) {
	if err := client().Count(im.key(key), int64(val), im.withTags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpSum"}).Warn("bump failed")
	}
}

func (im *impl) BumpHistogram(key string, val float64, tags ...string) {
	if err := client().Histogram(im.key(key), val, im.withTags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpHistogram"}).Warn("bump failed")
	}
}

// BumpTime starts a timer, stop it with End():
//
//	defer met.BumpTime("my.function").End()
func (im *impl) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   im.key(key),
		tags:  im.withTags(tags),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	ms := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := client().TimeInMilliseconds(t.key, ms, t.tags, 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "func": "BumpTime"}).Warn("bump failed")
	}
}

func parseTag(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", strings.Join(tags, ",")).Warn("odd number of tags, last one dropped")
		tags = tags[:len(tags)-1]
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
