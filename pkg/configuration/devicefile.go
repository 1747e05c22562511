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

package configuration

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// LoadDeviceUrls merges DeviceUrls with the addresses listed in the
// device_url file. The file holds one sensor address per line; blank lines
// and lines starting with '#' are ignored. A missing file is only an error
// if no addresses were configured through the environment either.
func (c Config) LoadDeviceUrls() ([]string, error) {
	urls := []string{}
	seen := map[string]bool{}
	add := func(raw string) {
		url := NormalizeDeviceUrl(raw)
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		urls = append(urls, url)
	}

	for _, raw := range c.DeviceUrls {
		add(raw)
	}

	if c.DeviceUrlFile != "" {
		file, err := os.Open(c.DeviceUrlFile)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("unable to read device url file %s: %w", c.DeviceUrlFile, err)
			}
		} else {
			defer file.Close()
			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				add(line)
			}
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("unable to read device url file %s: %w", c.DeviceUrlFile, err)
			}
		}
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("no device urls configured: set DEVICE_URLS or list addresses in %s", c.DeviceUrlFile)
	}
	return urls, nil
}

// NormalizeDeviceUrl turns a bare address like "10.0.0.158" into a http url
// and strips trailing slashes.
func NormalizeDeviceUrl(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	return strings.TrimRight(url, "/")
}
