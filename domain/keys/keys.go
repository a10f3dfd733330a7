package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxMetadata prefixes token metadata keyed by tokenURI
	PfxMetadata = "metadata"
	// PfxEns prefixes resolved ENS names
	PfxEns = "ens"
	// PfxHttpCache prefixes cached HTTP responses
	PfxHttpCache = "httpcache"
	// PfxAuthNonce prefixes pending login nonces keyed by address
	PfxAuthNonce = "authnonce"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey joins the key components with the given delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins the key components with ":"
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the first one or two components of a key, used as a metrics tag.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join(s[:2], ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
