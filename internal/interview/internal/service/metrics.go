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

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_sessions_total",
			Help: "Mock interview sessions by how they were obtained",
		},
		// created / resumed / restored
		[]string{"action"},
	)

	persistFailureCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_persist_failures_total",
			Help: "Failed best-effort writes to the session store",
		},
		[]string{"op"},
	)

	reportCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_reports_total",
			Help: "Report generations by result",
		},
		[]string{"result"},
	)
)
