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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
)

const (
	BizInterviewQuestionGenerate = "interview_question_generate"
	BizInterviewAnswerEvaluate   = "interview_answer_evaluate"
	BizInterviewSummary          = "interview_summary"
)

var (
	ErrUnknownBiz    = errors.New("未知的业务")
	ErrInputTooLong  = errors.New("输入太长")
	ErrEmptyResponse = errors.New("大模型没有返回内容")
)

type LLMRequest struct {
	Biz string
	// 请求id
	Tid string
	// 用户的输入
	Input []string
	// 业务相关的配置
	Config BizConfig

	// prompt 将 input 和 PromptTemplate 结合之后生成的正儿八经的 Prompt
	prompt string
}

func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		args := slice.Map(req.Input, func(idx int, src string) any {
			return src
		})
		req.prompt = fmt.Sprintf(req.Config.PromptTemplate, args...)
	}
	return req.prompt
}

// InputLen 所有输入的字符数
func (req *LLMRequest) InputLen() int {
	cnt := 0
	for _, in := range req.Input {
		cnt += len([]rune(in))
	}
	return cnt
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Biz string
	// 使用的模型
	Model string

	Temperature float64
	TopP        float64

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入
	// 这里我们不用计算 token，只需要简单约束一下字符串长度就可以
	MaxInput int
	// 这里一般使用 %s，按照 Input 的顺序填充
	PromptTemplate string
}
