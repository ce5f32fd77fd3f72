package api

import (
	"strconv"

	"github.com/arodena/focusfeed/internal/cache"
)

func (handler *Handler) invalidateFor(mutation cache.Mutation, userID uint) {
	handler.cacheRules.Apply(handler.statsCache, mutation, strconv.FormatUint(uint64(userID), 10))
}

func userCacheSegment(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
