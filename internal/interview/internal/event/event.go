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

package event

import "github.com/ecodeclub/interview-guide/internal/interview/internal/domain"

const InterviewEvaluatedTopic = "interview_evaluated_events"

// InterviewEvaluatedEvent 每次生成报告之后发送
type InterviewEvaluatedEvent struct {
	SessionID      string `json:"sessionId"`
	ResumeID       int64  `json:"resumeId"`
	OverallScore   int    `json:"overallScore"`
	TotalQuestions int    `json:"totalQuestions"`
	Utime          int64  `json:"utime"`
}

func NewInterviewEvaluatedEvent(sess domain.Session, report domain.Report) InterviewEvaluatedEvent {
	return InterviewEvaluatedEvent{
		SessionID:      sess.SessionID,
		ResumeID:       sess.ResumeID,
		OverallScore:   report.OverallScore,
		TotalQuestions: sess.TotalQuestions(),
		Utime:          sess.Utime,
	}
}
