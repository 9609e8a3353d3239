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

package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/interview-guide/internal/ai/internal/domain"
)

type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
}

// StaticConfigRepository 启动的时候从配置文件加载，运行期间不会变化
type StaticConfigRepository struct {
	configs map[string]domain.BizConfig
}

func NewStaticConfigRepository(configs []domain.BizConfig) ConfigRepository {
	m := make(map[string]domain.BizConfig, len(configs))
	for _, cfg := range configs {
		m[cfg.Biz] = cfg
	}
	return &StaticConfigRepository{configs: m}
}

func (repo *StaticConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, ok := repo.configs[biz]
	if !ok {
		return domain.BizConfig{}, fmt.Errorf("%w biz: %s", domain.ErrUnknownBiz, biz)
	}
	return cfg, nil
}
