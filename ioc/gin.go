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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/interview-guide/config"
	"github.com/ecodeclub/interview-guide/internal/interview"
	"github.com/ecodeclub/interview-guide/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(interviewHdl *interview.Handler) *egin.Component {
	var cfg config.CORSConfig
	err := econf.UnmarshalKey("cors", &cfg)
	if err != nil {
		panic(err)
	}
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowHeaders: []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, domain := range cfg.AllowedDomains {
				if strings.Contains(origin, domain) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	interviewHdl.PublicRoutes(res.Engine)
	interviewHdl.PrivateRoutes(res.Engine)
	return res
}
