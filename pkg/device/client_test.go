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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPayload = `{
	"SensorId": "84:f3:eb:44:b1:9f",
	"DateTime": "2025/06/29T22:44:14z",
	"Geo": "PurpleAir-b19f",
	"version": "7.04",
	"hardwarediscovered": "2.0+BME280+PMSX003-A",
	"pm2.5_aqi": 33,
	"status_0": 2,
	"status_1": 2
}`

func TestFetch(t *testing.T) {
	var gotPath, gotLive string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLive = r.URL.Query().Get("live")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testPayload))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, true)
	reading, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/json", gotPath)
	assert.Equal(t, "true", gotLive)
	assert.Equal(t, "84:f3:eb:44:b1:9f", reading.SensorId)
	assert.Equal(t, []string{"BME280", "PMSX003-A"}, reading.Hardware())

	client = New(server.URL, time.Second, false)
	_, err = client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", gotLive)
}

func TestFetchErrors(t *testing.T) {
	for name, handler := range map[string]http.HandlerFunc{
		"non-200": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "busy", http.StatusServiceUnavailable)
		},
		"garbage": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		},
		"missing sensor id": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"Geo": "PurpleAir-b19f"}`))
		},
	} {
		caseServer := httptest.NewServer(handler)
		client := New(caseServer.URL, time.Second, false)
		_, err := client.Fetch(context.Background())
		assert.Error(t, err, name)
		caseServer.Close()
	}
}

func TestFetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	address := server.URL
	server.Close()

	client := New(address, time.Second, true)
	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}
