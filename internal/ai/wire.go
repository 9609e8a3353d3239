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

//go:build wireinject

package ai

import (
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/interview-guide/internal/ai/internal/service/llm/handler/log"
	"github.com/google/wire"
)

func InitModule() (*Module, error) {
	wire.Build(
		InitConfigRepository,
		config.NewBuilder,
		log.NewHandler,
		InitCommonHandlers,
		InitPlatform,
		handler.NewCompositionHandler,
		llm.NewLLMService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
