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

package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/model"
)

// Client reads from the local http endpoint of a single PA-II sensor.
type Client struct {
	address    string
	live       bool
	httpClient *http.Client
}

func New(address string, timeout time.Duration, live bool) *Client {
	return &Client{
		address:    address,
		live:       live,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Address() string {
	return c.address
}

// Fetch requests the current reading. With live enabled the device returns
// instantaneous values instead of the running 2-minute average.
func (c *Client) Fetch(ctx context.Context) (*model.Reading, error) {
	endpoint := c.address + model.DeviceJsonPath
	if c.live {
		query := url.Values{}
		query.Set(model.DeviceLiveParam, "true")
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("unable to reach sensor %s", c.address), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("sensor %s returned %s: %s", c.address, resp.Status, string(body))
	}
	reading := &model.Reading{}
	if err = json.NewDecoder(resp.Body).Decode(reading); err != nil {
		return nil, errors.Join(fmt.Errorf("unable to parse reading from %s", c.address), err)
	}
	if reading.SensorId == "" {
		return nil, fmt.Errorf("reading from %s has no SensorId", c.address)
	}
	return reading, nil
}
