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

package interview

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/interview-guide/internal/ai"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/event"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/service"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, aiModule *ai.Module) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewLocalSessionCache,
		wire.Bind(new(cache.SessionCache), new(*cache.LocalSessionCache)),
		cache.NewReportECache,
		repository.NewSessionRepository,
		wire.FieldsOf(new(*ai.Module), "Svc"),
		service.NewLLMQuestionGenerator,
		wire.Bind(new(service.QuestionGenerator), new(*service.LLMQuestionGenerator)),
		service.NewLLMEvaluator,
		wire.Bind(new(service.Evaluator), new(*service.LLMEvaluator)),
		event.NewEvaluatedEventProducer,
		service.NewSessionService,
		initHandlerConfig,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var initOnce sync.Once

func initDAO(db *gorm.DB) dao.SessionDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMSessionDAO(db)
}

func initHandlerConfig() web.Config {
	cfg := web.Config{
		DefaultQuestionCount: 5,
		MaxQuestionCount:     20,
	}
	// interview.defaultQuestionCount, interview.maxQuestionCount
	err := econf.UnmarshalKey("interview", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
