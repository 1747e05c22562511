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
	"errors"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/configuration"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/device"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/model"
	"github.com/go-redis/redis/v8"
)

type Controller struct {
	config   configuration.Config
	devices  []*device.Client
	redis    *redis.Client
	producer sarama.SyncProducer

	mu     sync.RWMutex
	latest map[string]storedReading
}

type storedReading struct {
	reading *model.Reading
	address string
	seen    time.Time
}

func New(ctx context.Context, config configuration.Config) (*Controller, error) {
	urls, err := config.LoadDeviceUrls()
	if err != nil {
		return nil, err
	}

	c := &Controller{config: config, latest: map[string]storedReading{}}
	for _, url := range urls {
		c.devices = append(c.devices, device.New(url, config.RequestTimeout, config.LiveReadings))
	}

	if config.RedisUrl != "" {
		c.redis = redis.NewClient(&redis.Options{Addr: config.RedisUrl})

		// test connection
		ctxWt, cf := context.WithTimeout(ctx, 10*time.Second)
		defer cf()
		if err = c.redis.Ping(ctxWt).Err(); err != nil {
			return nil, errors.Join(errors.New("unable to connect to redis"), err)
		}
	}

	if config.KafkaBootstrap != "" {
		if err = c.initProducer(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Controller) close() {
	if c.producer != nil {
		_ = c.producer.Close()
	}
	if c.redis != nil {
		_ = c.redis.Close()
	}
}
