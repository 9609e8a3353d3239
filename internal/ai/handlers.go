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

package ai

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/domain"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/repository"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/gotomicro/ego/core/econf"
)

// InitPlatform 按照 llm.platform 选择真正的出口
func InitPlatform() handler.Handler {
	platform := econf.GetString("llm.platform")
	switch platform {
	case "zhipu":
		type Config struct {
			APIKey string `yaml:"apikey"`
		}
		var cfg Config
		err := econf.UnmarshalKey("llm.zhipu", &cfg)
		if err != nil {
			panic(err)
		}
		h, err := zhipu.NewHandler(cfg.APIKey)
		if err != nil {
			panic(err)
		}
		return h
	case "openai", "":
		type Config struct {
			BaseURL string `yaml:"baseURL"`
			APIKey  string `yaml:"apikey"`
		}
		var cfg Config
		err := econf.UnmarshalKey("llm.openai", &cfg)
		if err != nil {
			panic(err)
		}
		return openai.NewHandler(cfg.BaseURL, cfg.APIKey)
	default:
		panic(fmt.Sprintf("未知的 LLM 平台 %s", platform))
	}
}

func InitConfigRepository() repository.ConfigRepository {
	type Config struct {
		Biz            string  `yaml:"biz"`
		Model          string  `yaml:"model"`
		Temperature    float64 `yaml:"temperature"`
		TopP           float64 `yaml:"topP"`
		SystemPrompt   string  `yaml:"systemPrompt"`
		MaxInput       int     `yaml:"maxInput"`
		PromptTemplate string  `yaml:"promptTemplate"`
	}
	var cfgs []Config
	err := econf.UnmarshalKey("llm.biz", &cfgs)
	if err != nil {
		panic(err)
	}
	return repository.NewStaticConfigRepository(slice.Map(cfgs, func(_ int, src Config) domain.BizConfig {
		return domain.BizConfig{
			Biz:            src.Biz,
			Model:          src.Model,
			Temperature:    src.Temperature,
			TopP:           src.TopP,
			SystemPrompt:   src.SystemPrompt,
			MaxInput:       src.MaxInput,
			PromptTemplate: src.PromptTemplate,
		}
	}))
}

// InitCommonHandlers log -> config -> platform
func InitCommonHandlers(log *log.HandlerBuilder, cfg *config.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, cfg}
}
