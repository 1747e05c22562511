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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"github.com/SENERGY-Platform/purpleair-platform-connector/pkg/model"
)

func (c *Controller) initProducer() error {
	sconfig := sarama.NewConfig()
	sconfig.Producer.RequiredAcks = sarama.WaitForLocal
	sconfig.Producer.Compression = sarama.CompressionSnappy
	sconfig.Producer.Return.Successes = true
	producer, err := sarama.NewSyncProducer(strings.Split(c.config.KafkaBootstrap, ","), sconfig)
	if err != nil {
		return errors.Join(errors.New("unable to connect to kafka"), err)
	}
	c.producer = producer
	return nil
}

func (c *Controller) publish(reading *model.Reading) error {
	if c.producer == nil {
		return nil
	}
	encoded, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	_, _, err = c.producer.SendMessage(&sarama.ProducerMessage{
		Topic: c.config.KafkaTopic,
		Key:   sarama.StringEncoder(reading.SensorId),
		Value: sarama.ByteEncoder(encoded),
	})
	if err != nil {
		return errors.Join(fmt.Errorf("unable to publish reading for %s", reading.SensorId), err)
	}
	return nil
}
