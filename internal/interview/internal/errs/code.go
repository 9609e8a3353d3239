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

package errs

var (
	SystemError          = ErrorCode{Code: 517001, Msg: "系统错误"}
	SessionNotFound      = ErrorCode{Code: 517002, Msg: "面试会话不存在"}
	InvalidQuestionIndex = ErrorCode{Code: 517003, Msg: "无效的问题索引"}
	AlreadyCompleted     = ErrorCode{Code: 517004, Msg: "面试已经结束"}
	NotCompleted         = ErrorCode{Code: 517005, Msg: "面试尚未完成，无法生成报告"}
	GenerationFailed     = ErrorCode{Code: 517006, Msg: "面试题目生成失败"}
	EvaluationFailed     = ErrorCode{Code: 517007, Msg: "面试评估失败"}
	InvalidParam         = ErrorCode{Code: 517008, Msg: "参数错误"}
	ReportNotFound       = ErrorCode{Code: 517009, Msg: "面试报告不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
