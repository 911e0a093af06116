package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/RockyPukar1/saasan-sub002/internal/database"
	"github.com/RockyPukar1/saasan-sub002/internal/models"
)

const (
	profileCacheTTL   = 10 * time.Minute
	directoryCacheTTL = 1 * time.Hour
)

const directoryCachePrefix = "directory:politicians:"

func profileCacheKey(id primitive.ObjectID) string {
	return "profile:politician:" + id.Hex()
}

func directoryCacheKey(page, pageSize int64) string {
	return fmt.Sprintf("%sp%d:s%d", directoryCachePrefix, page, pageSize)
}

// GetProfileFromCache is the read-through cache in front of the profile
// assembler. Cache misses fall through to the pipeline and populate the key.
func GetProfileFromCache(id primitive.ObjectID) (*models.PoliticianProfile, error) {
	if database.Rdb == nil {
		return FindPoliticianProfile(id)
	}

	ctx := context.Background()
	key := profileCacheKey(id)
	val, err := database.Rdb.Get(ctx, key).Result()

	if err == redis.Nil {
		profile, err := FindPoliticianProfile(id)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(profile); err == nil {
			if err := database.Rdb.Set(ctx, key, data, profileCacheTTL).Err(); err != nil {
				zap.L().Warn("failed to cache profile", zap.String("key", key), zap.Error(err))
			}
		}
		return profile, nil
	} else if err != nil {
		return nil, err
	}

	var profile models.PoliticianProfile
	err = json.Unmarshal([]byte(val), &profile)
	return &profile, err
}

// InvalidateProfileCache drops a politician's cached profile after a write.
func InvalidateProfileCache(ctx context.Context, id primitive.ObjectID) {
	if database.Rdb == nil {
		return
	}
	if err := database.Rdb.Del(ctx, profileCacheKey(id)).Err(); err != nil {
		zap.L().Warn("failed to invalidate profile cache",
			zap.String("politician_id", id.Hex()), zap.Error(err))
	}
}

// InvalidateDirectoryCache drops every cached directory page after a
// politician write. Both the cron-warmed pages and the ones populated by
// read-through misses live under the same prefix, so a scan catches all of
// them and the next unfiltered list reflects the write immediately.
func InvalidateDirectoryCache(ctx context.Context) {
	if database.Rdb == nil {
		return
	}
	iter := database.Rdb.Scan(ctx, 0, directoryCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := database.Rdb.Del(ctx, iter.Val()).Err(); err != nil {
			zap.L().Warn("failed to invalidate directory cache",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		zap.L().Warn("directory cache scan failed", zap.Error(err))
	}
}

// ListPoliticiansCached serves unfiltered directory pages from the cache.
// Filtered lists always hit the store; their key space is unbounded.
func ListPoliticiansCached(filter ListFilter, page, pageSize int64) ([]models.PoliticianProfile, error) {
	if database.Rdb == nil || !filter.Empty() {
		return ListPoliticianProfiles(filter, page, pageSize)
	}

	ctx := context.Background()
	key := directoryCacheKey(page, pageSize)
	val, err := database.Rdb.Get(ctx, key).Result()

	if err == redis.Nil {
		profiles, err := ListPoliticianProfiles(filter, page, pageSize)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(profiles); err == nil {
			if err := database.Rdb.Set(ctx, key, data, directoryCacheTTL).Err(); err != nil {
				zap.L().Warn("failed to cache directory page", zap.String("key", key), zap.Error(err))
			}
		}
		return profiles, nil
	} else if err != nil {
		return nil, err
	}

	var profiles []models.PoliticianProfile
	err = json.Unmarshal([]byte(val), &profiles)
	return profiles, err
}

// ScheduleDirectoryCacheWarmup recomputes the first directory pages on the
// cron schedule so the most-hit keys stay fresh between TTL expiries.
func ScheduleDirectoryCacheWarmup() {
	if database.Rdb == nil {
		return
	}
	ctx := context.Background()

	warmConfigs := []struct {
		Page     int64
		PageSize int64
	}{
		{1, 10},
		{2, 10},
		{3, 10},
	}

	for _, config := range warmConfigs {
		profiles, err := ListPoliticianProfiles(ListFilter{}, config.Page, config.PageSize)
		if err != nil {
			zap.L().Error("directory warmup aggregation failed",
				zap.Int64("page", config.Page), zap.Error(err))
			continue
		}
		data, err := json.Marshal(profiles)
		if err != nil {
			zap.L().Error("directory warmup marshal failed", zap.Error(err))
			continue
		}
		key := directoryCacheKey(config.Page, config.PageSize)
		if err := database.Rdb.Set(ctx, key, data, directoryCacheTTL).Err(); err != nil {
			zap.L().Error("directory warmup cache write failed",
				zap.String("key", key), zap.Error(err))
		} else {
			zap.L().Debug("directory page cached", zap.String("key", key),
				zap.Int("politicians", len(profiles)))
		}
	}
}
