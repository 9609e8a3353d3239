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

package web

type CreateReq struct {
	// ResumeID 不传的时候，会话不会保存到数据库
	ResumeID      int64  `json:"resumeId"`
	ResumeText    string `json:"resumeText"`
	QuestionCount int    `json:"questionCount"`
}

type SessionReq struct {
	SessionID string `json:"sessionId"`
}

type UnfinishedReq struct {
	ResumeID int64 `json:"resumeId"`
}

type AnswerReq struct {
	SessionID     string `json:"sessionId"`
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

type Session struct {
	SessionID            string     `json:"sessionId"`
	ResumeID             int64      `json:"resumeId"`
	TotalQuestions       int        `json:"totalQuestions"`
	CurrentQuestionIndex int        `json:"currentQuestionIndex"`
	Status               string     `json:"status"`
	Questions            []Question `json:"questions"`
	Ctime                int64      `json:"ctime"`
	Utime                int64      `json:"utime"`
}

type Question struct {
	QuestionIndex int    `json:"questionIndex"`
	Category      string `json:"category"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer,omitempty"`
	Answered      bool   `json:"answered"`
}

type CurrentQuestionResp struct {
	// Completed 所有题目都已经提交
	Completed bool     `json:"completed"`
	Question  Question `json:"question,omitzero"`
}

type SubmitResp struct {
	HasNextQuestion bool     `json:"hasNextQuestion"`
	NextQuestion    Question `json:"nextQuestion,omitzero"`
	CurrentIndex    int      `json:"currentIndex"`
	TotalQuestions  int      `json:"totalQuestions"`
}

type Report struct {
	SessionID        string               `json:"sessionId"`
	TotalQuestions   int                  `json:"totalQuestions"`
	OverallScore     int                  `json:"overallScore"`
	CategoryScores   []CategoryScore      `json:"categoryScores"`
	QuestionDetails  []QuestionEvaluation `json:"questionDetails"`
	OverallFeedback  string               `json:"overallFeedback"`
	Strengths        []string             `json:"strengths"`
	Improvements     []string             `json:"improvements"`
	ReferenceAnswers []ReferenceAnswer    `json:"referenceAnswers"`
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
