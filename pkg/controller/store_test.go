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
	"net/http"
	"testing"
	"time"

	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/log"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/model"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisHistory(t *testing.T) {
	mr := miniredis.RunT(t)

	config := testConfig("10.0.0.158")
	config.RedisUrl = mr.Addr()
	config.HistoryLimit = 3
	log.Init(config)

	c, err := New(context.Background(), config)
	require.NoError(t, err)
	defer c.close()

	for i := 0; i < 5; i++ {
		reading := &model.Reading{SensorId: "84:f3:eb:44:b1:9f", Uptime: uint64(i)}
		require.NoError(t, c.storeReading(context.Background(), "http://10.0.0.158", reading, time.Now()))
	}

	// the list never grows past HistoryLimit
	values, err := mr.List(model.RedisHistoryKeyPrefix + "84:f3:eb:44:b1:9f")
	require.NoError(t, err)
	assert.Len(t, values, 3)

	// newest first
	history, err := c.ReadingHistory(context.Background(), "84:f3:eb:44:b1:9f", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, uint64(4), history[0].Uptime)
	assert.Equal(t, uint64(3), history[1].Uptime)
	assert.Equal(t, uint64(2), history[2].Uptime)

	history, err = c.ReadingHistory(context.Background(), "84:f3:eb:44:b1:9f", 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	// the latest reading is cached alongside the history
	raw, err := mr.Get(model.RedisReadingKeyPrefix + "84:f3:eb:44:b1:9f")
	require.NoError(t, err)
	latest := model.Reading{}
	require.NoError(t, json.Unmarshal([]byte(raw), &latest))
	assert.Equal(t, uint64(4), latest.Uptime)

	_, err = c.ReadingHistory(context.Background(), "unknown", 0)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRedisHistoryDisabled(t *testing.T) {
	mr := miniredis.RunT(t)

	config := testConfig("10.0.0.158")
	config.RedisUrl = mr.Addr()
	config.HistoryLimit = 0
	log.Init(config)

	c, err := New(context.Background(), config)
	require.NoError(t, err)
	defer c.close()

	for i := 0; i < 2; i++ {
		reading := &model.Reading{SensorId: "84:f3:eb:44:b1:9f", Uptime: uint64(i)}
		require.NoError(t, c.storeReading(context.Background(), "http://10.0.0.158", reading, time.Now()))
	}

	// no history list is written while the latest reading is still cached
	assert.False(t, mr.Exists(model.RedisHistoryKeyPrefix+"84:f3:eb:44:b1:9f"))
	assert.True(t, mr.Exists(model.RedisReadingKeyPrefix+"84:f3:eb:44:b1:9f"))

	history, err := c.ReadingHistory(context.Background(), "84:f3:eb:44:b1:9f", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, uint64(1), history[0].Uptime)
}

func TestReadingHistoryUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)

	config := testConfig("10.0.0.158")
	config.RedisUrl = mr.Addr()
	log.Init(config)

	c, err := New(context.Background(), config)
	require.NoError(t, err)
	defer c.close()

	reading := &model.Reading{SensorId: "84:f3:eb:44:b1:9f"}
	require.NoError(t, c.storeReading(context.Background(), "http://10.0.0.158", reading, time.Now()))

	mr.Close()

	_, err = c.ReadingHistory(context.Background(), "84:f3:eb:44:b1:9f", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnavailable))
	assert.Equal(t, http.StatusServiceUnavailable, model.GetStatusCode(err))
}
