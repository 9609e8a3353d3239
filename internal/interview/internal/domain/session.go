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

import (
	"errors"
	"slices"
)

var (
	ErrInvalidQuestionIndex  = errors.New("无效的问题索引")
	ErrAlreadyCompleted      = errors.New("面试已经结束")
	ErrInterviewNotCompleted = errors.New("面试尚未完成")
)

// SessionStatus 模拟面试会话的状态，只能向前流转
// CREATED -> IN_PROGRESS -> COMPLETED -> EVALUATED
type SessionStatus string

const (
	StatusCreated    SessionStatus = "CREATED"
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
	StatusEvaluated  SessionStatus = "EVALUATED"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusInProgress, StatusCompleted, StatusEvaluated:
		return true
	default:
		return false
	}
}

func (s SessionStatus) String() string {
	return string(s)
}

// IsUnfinished 还可以继续答题
func (s SessionStatus) IsUnfinished() bool {
	return s == StatusCreated || s == StatusInProgress
}

func (s SessionStatus) IsFinished() bool {
	return s == StatusCompleted || s == StatusEvaluated
}

// Question 面试中的一道题，Index 在创建时确定，之后不会变化
type Question struct {
	Index           int
	Category        string
	Question        string
	ReferenceAnswer string
	KeyPoints       []string

	UserAnswer string
	// Answered 区分"没有作答"和"作答了空字符串"
	Answered bool
}

func (q Question) WithAnswer(answer string) Question {
	q.UserAnswer = answer
	q.Answered = true
	return q
}

// Answer 持久化的作答记录，恢复会话时按 QuestionIndex 回填
type Answer struct {
	QuestionIndex int
	Question      string
	Category      string
	UserAnswer    string
	// 提交时还没有评分，生成报告之后才会回写
	Score    int
	Feedback string
}

type CreateRequest struct {
	// ResumeID 为 0 表示没有关联简历，这种会话不会落库
	ResumeID      int64
	ResumeText    string
	QuestionCount int
}

// Session 一场模拟面试，是聚合根。
// Questions 的长度在创建时确定，之后既不会追加也不会截断。
type Session struct {
	SessionID  string
	ResumeID   int64
	ResumeText string
	Questions  []Question
	// CurrentIndex 已经提交的题目数量，0 <= CurrentIndex <= len(Questions)
	CurrentIndex int
	Status       SessionStatus
	Ctime        int64
	Utime        int64
}

func (s *Session) TotalQuestions() int {
	return len(s.Questions)
}

// HasSubject 只有关联了简历的会话才需要同步到数据库
func (s *Session) HasSubject() bool {
	return s.ResumeID > 0
}

func (s *Session) Exhausted() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// CurrentQuestion 返回当前待回答的题目，题目全部答完时返回 false
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.Exhausted() {
		return Question{}, false
	}
	q := s.Questions[s.CurrentIndex]
	q.KeyPoints = slices.Clone(q.KeyPoints)
	return q, true
}

// Start 首次出题或者首次暂存答案的时候，CREATED 转为 IN_PROGRESS。
// 返回值表示状态是否发生了变化。
func (s *Session) Start() bool {
	if s.Status != StatusCreated {
		return false
	}
	s.Status = StatusInProgress
	return true
}

// RecordAnswer 覆盖写入某道题的答案
func (s *Session) RecordAnswer(idx int, answer string) error {
	if idx < 0 || idx >= len(s.Questions) {
		return ErrInvalidQuestionIndex
	}
	s.Questions[idx] = s.Questions[idx].WithAnswer(answer)
	return nil
}

// Advance 提交 idx 之后移动到下一题。
// 这里不要求 idx == CurrentIndex，提交更早的题目会让进度回退。
// 全部题目提交之后转为 COMPLETED，状态本身不会回退。
func (s *Session) Advance(idx int) {
	s.CurrentIndex = idx + 1
	if s.CurrentIndex >= len(s.Questions) {
		if !s.Status.IsFinished() {
			s.Status = StatusCompleted
		}
		return
	}
	if s.Status == StatusCreated {
		s.Status = StatusInProgress
	}
}

// Complete 提前交卷
func (s *Session) Complete() error {
	if s.Status.IsFinished() {
		return ErrAlreadyCompleted
	}
	s.Status = StatusCompleted
	return nil
}

// MarkEvaluated 已经是 EVALUATED 的时候允许重复生成报告
func (s *Session) MarkEvaluated() error {
	if !s.Status.IsFinished() {
		return ErrInterviewNotCompleted
	}
	s.Status = StatusEvaluated
	return nil
}

// ApplyAnswers 把落库的作答记录回填到题目上，越界的记录直接忽略
func (s *Session) ApplyAnswers(answers []Answer) {
	for _, ans := range answers {
		if ans.QuestionIndex < 0 || ans.QuestionIndex >= len(s.Questions) {
			continue
		}
		s.Questions[ans.QuestionIndex] = s.Questions[ans.QuestionIndex].WithAnswer(ans.UserAnswer)
	}
}

func (s *Session) AnsweredCount() int {
	cnt := 0
	for _, q := range s.Questions {
		if q.Answered {
			cnt++
		}
	}
	return cnt
}

// Clone 深拷贝，缓存里的对象不会直接暴露给调用者
func (s *Session) Clone() Session {
	res := *s
	res.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		q.KeyPoints = slices.Clone(q.KeyPoints)
		res.Questions[i] = q
	}
	return res
}

// SubmitResult 提交答案之后的进度
type SubmitResult struct {
	HasNext        bool
	NextQuestion   Question
	CurrentIndex   int
	TotalQuestions int
}
