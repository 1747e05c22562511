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
	"sync"
	"time"

	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/device"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/log"
)

// Start runs the polling loop until ctx is done. The first poll happens
// immediately so the api has data before the first tick.
func (c *Controller) Start(ctx context.Context, wg *sync.WaitGroup) {
	wg.Go(func() {
		defer c.close()
		c.PollAll(ctx)
		ticker := time.NewTicker(c.config.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Logger.Info("stopping poller")
				return
			case <-ticker.C:
				c.PollAll(ctx)
			}
		}
	})
}

func (c *Controller) PollAll(ctx context.Context) {
	wg := sync.WaitGroup{}
	for _, dev := range c.devices {
		wg.Go(func() {
			c.poll(ctx, dev)
		})
	}
	wg.Wait()
}

func (c *Controller) poll(ctx context.Context, dev *device.Client) {
	reading, err := dev.Fetch(ctx)
	if err != nil {
		log.Logger.Error("unable to poll sensor", "address", dev.Address(), attributes.ErrorKey, err)
		return
	}
	log.Logger.Debug("reading received", "sensor_id", reading.SensorId, "address", dev.Address())
	seen := time.Now().UTC()
	if err = c.storeReading(ctx, dev.Address(), reading, seen); err != nil {
		log.Logger.Error("unable to store reading", "sensor_id", reading.SensorId, attributes.ErrorKey, err)
	}
	if err = c.publish(reading); err != nil {
		log.Logger.Error("unable to publish reading", "sensor_id", reading.SensorId, attributes.ErrorKey, err)
	}
}
