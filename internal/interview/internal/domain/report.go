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

package domain

// Report 面试报告，每次调用 GenerateReport 都会重新计算
type Report struct {
	SessionID       string               `json:"sessionId"`
	TotalQuestions  int                  `json:"totalQuestions"`
	OverallScore    int                  `json:"overallScore"`
	CategoryScores  []CategoryScore      `json:"categoryScores"`
	QuestionDetails []QuestionEvaluation `json:"questionDetails"`
	OverallFeedback string               `json:"overallFeedback"`
	Strengths       []string             `json:"strengths"`
	Improvements    []string             `json:"improvements"`
	// ReferenceAnswers 附录
	ReferenceAnswers []ReferenceAnswer `json:"referenceAnswers"`
}

type CategoryScore struct {
	Category      string `json:"category"`
	Score         int    `json:"score"`
	QuestionCount int    `json:"questionCount"`
}

type QuestionEvaluation struct {
	QuestionIndex int    `json:"questionIndex"`
	Question      string `json:"question"`
	Category      string `json:"category"`
	UserAnswer    string `json:"userAnswer"`
	Score         int    `json:"score"`
	Feedback      string `json:"feedback"`
}

type ReferenceAnswer struct {
	QuestionIndex   int      `json:"questionIndex"`
	Question        string   `json:"question"`
	ReferenceAnswer string   `json:"referenceAnswer"`
	KeyPoints       []string `json:"keyPoints"`
}
