package database

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// The memcached layer only fronts /resource reads; a stalled cache node
// must not hold a request longer than the query it shortcuts.
func NewMemcached(server string) *memcache.Client {
	mc := memcache.New(server)
	mc.Timeout = 500 * time.Millisecond
	return mc
}
