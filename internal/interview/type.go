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

package interview

import (
	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/event"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/service"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/web"
)

type (
	SessionService          = service.SessionService
	Handler                 = web.Handler
	Session                 = domain.Session
	Question                = domain.Question
	Report                  = domain.Report
	CreateRequest           = domain.CreateRequest
	InterviewEvaluatedEvent = event.InterviewEvaluatedEvent
)

const InterviewEvaluatedTopic = event.InterviewEvaluatedTopic

var (
	ErrSessionNotFound       = service.ErrSessionNotFound
	ErrInvalidQuestionIndex  = service.ErrInvalidQuestionIndex
	ErrAlreadyCompleted      = service.ErrAlreadyCompleted
	ErrInterviewNotCompleted = service.ErrInterviewNotCompleted
	ErrGenerationFailed      = service.ErrGenerationFailed
	ErrEvaluationFailed      = service.ErrEvaluationFailed
	ErrReportNotFound        = service.ErrReportNotFound
	ErrInvalidQuestionCount  = service.ErrInvalidQuestionCount
)
