/*
 * Copyright 2026 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/model"
)

func (c *Controller) storeReading(ctx context.Context, address string, reading *model.Reading, seen time.Time) error {
	c.mu.Lock()
	c.latest[reading.SensorId] = storedReading{reading: reading, address: address, seen: seen}
	c.mu.Unlock()

	if c.redis == nil {
		return nil
	}
	encoded, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	pipe := c.redis.Pipeline()
	pipe.Set(ctx, model.RedisReadingKeyPrefix+reading.SensorId, encoded, 0)
	if c.config.HistoryLimit > 0 {
		historyKey := model.RedisHistoryKeyPrefix + reading.SensorId
		pipe.LPush(ctx, historyKey, encoded)
		pipe.LTrim(ctx, historyKey, 0, c.config.HistoryLimit-1)
	}
	if _, err = pipe.Exec(ctx); err != nil {
		return errors.Join(fmt.Errorf("unable to cache reading for %s", reading.SensorId), err)
	}
	return nil
}

// Sensors lists all configured devices, with reading-derived info for those
// that have reported at least once.
func (c *Controller) Sensors() []model.SensorInfo {
	c.mu.RLock()
	byAddress := map[string]storedReading{}
	for _, stored := range c.latest {
		byAddress[stored.address] = stored
	}
	c.mu.RUnlock()

	result := []model.SensorInfo{}
	for _, dev := range c.devices {
		stored, ok := byAddress[dev.Address()]
		if !ok {
			result = append(result, model.SensorInfoFromReading(dev.Address(), nil, time.Time{}))
			continue
		}
		result = append(result, model.SensorInfoFromReading(dev.Address(), stored.reading, stored.seen))
	}
	return result
}

func (c *Controller) Readings() []*model.Reading {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := []*model.Reading{}
	for _, stored := range c.latest {
		result = append(result, stored.reading)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SensorId < result[j].SensorId
	})
	return result
}

func (c *Controller) LatestReading(sensorId string) (*model.Reading, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stored, ok := c.latest[sensorId]
	if !ok {
		return nil, errors.Join(model.ErrNotFound, fmt.Errorf("no reading for sensor %s", sensorId))
	}
	return stored.reading, nil
}

// ReadingHistory returns the newest readings first. Without redis or with
// history disabled (HistoryLimit <= 0) only the latest reading is available.
func (c *Controller) ReadingHistory(ctx context.Context, sensorId string, limit int64) ([]*model.Reading, error) {
	if c.redis == nil || c.config.HistoryLimit <= 0 {
		latest, err := c.LatestReading(sensorId)
		if err != nil {
			return nil, err
		}
		return []*model.Reading{latest}, nil
	}
	if limit <= 0 || limit > c.config.HistoryLimit {
		limit = c.config.HistoryLimit
	}
	values, err := c.redis.LRange(ctx, model.RedisHistoryKeyPrefix+sensorId, 0, limit-1).Result()
	if err != nil {
		return nil, errors.Join(model.ErrUnavailable, fmt.Errorf("unable to read history for %s", sensorId), err)
	}
	if len(values) == 0 {
		return nil, errors.Join(model.ErrNotFound, fmt.Errorf("no history for sensor %s", sensorId))
	}
	result := make([]*model.Reading, 0, len(values))
	for _, value := range values {
		reading := &model.Reading{}
		if err = json.Unmarshal([]byte(value), reading); err != nil {
			return nil, err
		}
		result = append(result, reading)
	}
	return result, nil
}
