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

import (
	"context"
	"fmt"

	"github.com/ecodeclub/interview-guide/internal/ai/internal/domain"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/repository"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder 按照 biz 填充 LLMRequest.Config
type HandlerBuilder struct {
	repo repository.ConfigRepository
}

var _ handler.Builder = &HandlerBuilder{}

func NewBuilder(repo repository.ConfigRepository) *HandlerBuilder {
	return &HandlerBuilder{
		repo: repo,
	}
}

func (b *HandlerBuilder) Name() string {
	return "config"
}

func (b *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		cfg, err := b.repo.GetConfig(ctx, req.Biz)
		if err != nil {
			return domain.LLMResponse{}, err
		}
		req.Config = cfg
		if cfg.MaxInput > 0 && req.InputLen() > cfg.MaxInput {
			return domain.LLMResponse{}, fmt.Errorf("%w, biz: %s, 最多 %d 个字符", domain.ErrInputTooLong, req.Biz, cfg.MaxInput)
		}
		return next.Handle(ctx, req)
	})
}
