// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

// 这里的结构体对应 config.yaml 里的顶层配置

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type KafkaConfig struct {
	Network   string   `yaml:"network"`
	Addresses []string `yaml:"addresses"`
	Topics    []Topic  `yaml:"topics"`
}

type Topic struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type ZipkinConfig struct {
	ServiceName string `yaml:"serviceName"`
	Endpoint    string `yaml:"endpoint"`
}

// CORSConfig 允许跨域访问的来源，localhost 总是允许
type CORSConfig struct {
	AllowedDomains []string `yaml:"allowedDomains"`
}
