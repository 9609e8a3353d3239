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
	"strconv"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/interview-guide/internal/ai"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/lithammer/shortuuid/v4"
)

// QuestionGenerator 根据简历出题
type QuestionGenerator interface {
	// Generate 返回的题目数量必须等于 count，Index 从 0 开始连续
	Generate(ctx context.Context, resumeText string, count int) ([]domain.Question, error)
}

var _ QuestionGenerator = &LLMQuestionGenerator{}

type LLMQuestionGenerator struct {
	aiSvc ai.LLMService
}

func NewLLMQuestionGenerator(aiSvc ai.LLMService) *LLMQuestionGenerator {
	return &LLMQuestionGenerator{aiSvc: aiSvc}
}

type generatedQuestion struct {
	Category        string   `json:"category"`
	Question        string   `json:"question"`
	ReferenceAnswer string   `json:"referenceAnswer"`
	KeyPoints       []string `json:"keyPoints"`
}

func (g *LLMQuestionGenerator) Generate(ctx context.Context, resumeText string, count int) ([]domain.Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuestionCount, count)
	}
	resp, err := g.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizInterviewQuestionGenerate,
		Tid:   shortuuid.New(),
		Input: []string{resumeText, strconv.Itoa(count)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	var items []generatedQuestion
	err = unmarshalAnswer(resp.Answer, &items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	items = slice.FindAll(items, func(src generatedQuestion) bool {
		return strings.TrimSpace(src.Question) != ""
	})
	if len(items) < count {
		return nil, fmt.Errorf("%w: 需要 %d 道题，实际只有 %d 道", ErrGenerationFailed, count, len(items))
	}
	return slice.Map(items[:count], func(idx int, src generatedQuestion) domain.Question {
		return domain.Question{
			Index:           idx,
			Category:        src.Category,
			Question:        src.Question,
			ReferenceAnswer: src.ReferenceAnswer,
			KeyPoints:       src.KeyPoints,
		}
	}), nil
}
