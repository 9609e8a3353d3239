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
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/interview-guide/internal/ai"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

const (
	unansweredFeedback = "该题未作答"
	// 同一份报告里最多同时评估的题目数量
	evaluateConcurrency = 4
)

// Evaluator 对已经作答的题目打分，并生成整体报告
type Evaluator interface {
	Evaluate(ctx context.Context, sid string, resumeText string, questions []domain.Question) (domain.Report, error)
}

var _ Evaluator = &LLMEvaluator{}

// LLMEvaluator 每道题单独调用一次大模型评分，最后再调用一次生成总结
type LLMEvaluator struct {
	aiSvc ai.LLMService
}

func NewLLMEvaluator(aiSvc ai.LLMService) *LLMEvaluator {
	return &LLMEvaluator{aiSvc: aiSvc}
}

type answerEvaluation struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

type summaryEvaluation struct {
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, sid string, resumeText string, questions []domain.Question) (domain.Report, error) {
	tid := shortuuid.New()
	details := make([]domain.QuestionEvaluation, len(questions))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(evaluateConcurrency)
	for i, q := range questions {
		details[i] = domain.QuestionEvaluation{
			QuestionIndex: q.Index,
			Question:      q.Question,
			Category:      q.Category,
			UserAnswer:    q.UserAnswer,
		}
		if !q.Answered || strings.TrimSpace(q.UserAnswer) == "" {
			details[i].Feedback = unansweredFeedback
			continue
		}
		eg.Go(func() error {
			res, err := e.evaluateAnswer(egCtx, fmt.Sprintf("%s_%d", tid, q.Index), q)
			if err != nil {
				return err
			}
			details[i].Score = res.Score
			details[i].Feedback = res.Feedback
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return domain.Report{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}

	summary, err := e.summarize(ctx, tid+"_summary", resumeText, details)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	return domain.Report{
		SessionID:       sid,
		TotalQuestions:  len(questions),
		OverallScore:    overallScore(details),
		CategoryScores:  categoryScores(details),
		QuestionDetails: details,
		OverallFeedback: summary.Feedback,
		Strengths:       summary.Strengths,
		Improvements:    summary.Improvements,
		ReferenceAnswers: slice.Map(questions, func(_ int, src domain.Question) domain.ReferenceAnswer {
			return domain.ReferenceAnswer{
				QuestionIndex:   src.Index,
				Question:        src.Question,
				ReferenceAnswer: src.ReferenceAnswer,
				KeyPoints:       src.KeyPoints,
			}
		}),
	}, nil
}

func (e *LLMEvaluator) evaluateAnswer(ctx context.Context, tid string, q domain.Question) (answerEvaluation, error) {
	resp, err := e.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz: ai.BizInterviewAnswerEvaluate,
		Tid: tid,
		Input: []string{
			q.Question,
			q.ReferenceAnswer,
			strings.Join(q.KeyPoints, "；"),
			q.UserAnswer,
		},
	})
	if err != nil {
		return answerEvaluation{}, err
	}
	var res answerEvaluation
	err = unmarshalAnswer(resp.Answer, &res)
	if err != nil {
		return answerEvaluation{}, err
	}
	res.Score = min(max(res.Score, 0), 100)
	return res, nil
}

func (e *LLMEvaluator) summarize(ctx context.Context, tid string, resumeText string,
	details []domain.QuestionEvaluation) (summaryEvaluation, error) {
	var sb strings.Builder
	for _, d := range details {
		fmt.Fprintf(&sb, "第%d题[%s] %s\n回答：%s\n得分：%d\n评价：%s\n\n",
			d.QuestionIndex+1, d.Category, d.Question, d.UserAnswer, d.Score, d.Feedback)
	}
	resp, err := e.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizInterviewSummary,
		Tid:   tid,
		Input: []string{resumeText, sb.String()},
	})
	if err != nil {
		return summaryEvaluation{}, err
	}
	var res summaryEvaluation
	err = unmarshalAnswer(resp.Answer, &res)
	return res, err
}

// overallScore 所有题目的平均分，没有作答的题目按 0 分计算
func overallScore(details []domain.QuestionEvaluation) int {
	if len(details) == 0 {
		return 0
	}
	sum := 0
	for _, d := range details {
		sum += d.Score
	}
	return int(math.Round(float64(sum) / float64(len(details))))
}

// categoryScores 按照类别第一次出现的顺序输出
func categoryScores(details []domain.QuestionEvaluation) []domain.CategoryScore {
	res := make([]domain.CategoryScore, 0, 4)
	positions := make(map[string]int, 4)
	sums := make([]int, 0, 4)
	for _, d := range details {
		pos, ok := positions[d.Category]
		if !ok {
			pos = len(res)
			positions[d.Category] = pos
			res = append(res, domain.CategoryScore{Category: d.Category})
			sums = append(sums, 0)
		}
		res[pos].QuestionCount++
		sums[pos] += d.Score
	}
	for i := range res {
		res[i].Score = int(math.Round(float64(sums[i]) / float64(res[i].QuestionCount)))
	}
	return res
}
