package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pockets-budget/backend/internal/cache"
	"github.com/rs/zerolog/log"
)

// cacheHeader tells clients if the response was served from the cache.
const cacheHeader = "x-cache"

// cached serves the response for the key built from namespace and parts
// from the cache. When there is no cached response, compute is called and
// its result is cached if the request was successful.
func cached[T any](c *gin.Context, namespace string, parts []any, compute func() (int, T)) {
	ctx := c.Request.Context()

	key, err := cache.Key(namespace, parts...)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Building cache key")
		code, response := compute()
		c.JSON(code, response)
		return
	}

	if b, ok := cache.Store.Get(ctx, key); ok {
		var response T
		err := json.Unmarshal(b, &response)
		if err == nil {
			c.Header(cacheHeader, "hit")
			c.JSON(http.StatusOK, response)
			return
		}

		log.Warn().Str("request-id", requestid.Get(c)).Str("key", key).Err(err).Msg("Discarding unreadable cache entry")
	}

	code, response := compute()
	c.Header(cacheHeader, "miss")
	c.JSON(code, response)

	if code != http.StatusOK {
		return
	}

	b, err := json.Marshal(response)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Encoding response for cache")
		return
	}

	err = cache.Store.Set(ctx, key, b)
	if err != nil {
		log.Warn().Str("request-id", requestid.Get(c)).Str("key", key).Err(err).Msg("Writing to cache failed")
	}
}
