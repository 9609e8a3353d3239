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

import (
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/errs"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Config struct {
	DefaultQuestionCount int `yaml:"defaultQuestionCount"`
	MaxQuestionCount     int `yaml:"maxQuestionCount"`
}

// Handler 模拟面试会话的 HTTP 接口，会话不区分用户
type Handler struct {
	svc service.SessionService
	cfg Config
}

func NewHandler(svc service.SessionService, cfg Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/interview/session")
	g.POST("/create", ginx.B[CreateReq](h.Create))
	g.POST("/detail", ginx.B[SessionReq](h.Detail))
	g.POST("/unfinished", ginx.B[UnfinishedReq](h.Unfinished))
	g.POST("/question", ginx.B[SessionReq](h.CurrentQuestion))
	g.POST("/submit", ginx.B[AnswerReq](h.Submit))
	// 暂存答案，不会进入下一题
	g.POST("/save", ginx.B[AnswerReq](h.Save))
	g.POST("/complete", ginx.B[SessionReq](h.Complete))
	g.POST("/report/generate", ginx.B[SessionReq](h.GenerateReport))
	g.POST("/report", ginx.B[SessionReq](h.Report))
}

// Create 同一份简历有未完成的会话时直接返回
func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	cnt := req.QuestionCount
	if cnt == 0 {
		cnt = h.cfg.DefaultQuestionCount
	}
	if cnt < 1 || cnt > h.cfg.MaxQuestionCount || strings.TrimSpace(req.ResumeText) == "" || req.ResumeID < 0 {
		return codeResult(errs.InvalidParam), nil
	}
	sess, err := h.svc.CreateOrResume(ctx, domain.CreateRequest{
		ResumeID:      req.ResumeID,
		ResumeText:    req.ResumeText,
		QuestionCount: cnt,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: newSession(sess)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req SessionReq) (ginx.Result, error) {
	sess, err := h.svc.GetSession(ctx, req.SessionID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: newSession(sess)}, nil
}

// Unfinished 没有未完成的会话时 Data 为 nil
func (h *Handler) Unfinished(ctx *ginx.Context, req UnfinishedReq) (ginx.Result, error) {
	sess, err := h.svc.FindUnfinishedSession(ctx, req.ResumeID)
	switch {
	case err == nil:
		return ginx.Result{Data: newSession(sess)}, nil
	case errors.Is(err, service.ErrSessionNotFound):
		return ginx.Result{}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) CurrentQuestion(ctx *ginx.Context, req SessionReq) (ginx.Result, error) {
	q, ok, err := h.svc.GetCurrentQuestion(ctx, req.SessionID)
	if err != nil {
		return h.errResult(err)
	}
	if !ok {
		return ginx.Result{Data: CurrentQuestionResp{Completed: true}}, nil
	}
	return ginx.Result{Data: CurrentQuestionResp{Question: newQuestion(q)}}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req AnswerReq) (ginx.Result, error) {
	res, err := h.svc.SubmitAnswer(ctx, req.SessionID, req.QuestionIndex, req.Answer)
	if err != nil {
		return h.errResult(err)
	}
	resp := SubmitResp{
		HasNextQuestion: res.HasNext,
		CurrentIndex:    res.CurrentIndex,
		TotalQuestions:  res.TotalQuestions,
	}
	if res.HasNext {
		resp.NextQuestion = newQuestion(res.NextQuestion)
	}
	return ginx.Result{Data: resp}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req AnswerReq) (ginx.Result, error) {
	err := h.svc.SaveAnswer(ctx, req.SessionID, req.QuestionIndex, req.Answer)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Complete 提前交卷
func (h *Handler) Complete(ctx *ginx.Context, req SessionReq) (ginx.Result, error) {
	err := h.svc.CompleteEarly(ctx, req.SessionID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) GenerateReport(ctx *ginx.Context, req SessionReq) (ginx.Result, error) {
	report, err := h.svc.GenerateReport(ctx, req.SessionID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: newReport(report)}, nil
}

func (h *Handler) Report(ctx *ginx.Context, req SessionReq) (ginx.Result, error) {
	report, err := h.svc.GetReport(ctx, req.SessionID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: newReport(report)}, nil
}

// errResult 业务错误返回对应的错误码，其余的按照系统错误处理
func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return codeResult(errs.SessionNotFound), nil
	case errors.Is(err, service.ErrInvalidQuestionIndex):
		return codeResult(errs.InvalidQuestionIndex), nil
	case errors.Is(err, service.ErrAlreadyCompleted):
		return codeResult(errs.AlreadyCompleted), nil
	case errors.Is(err, service.ErrInterviewNotCompleted):
		return codeResult(errs.NotCompleted), nil
	case errors.Is(err, service.ErrReportNotFound):
		return codeResult(errs.ReportNotFound), nil
	case errors.Is(err, service.ErrInvalidQuestionCount):
		return codeResult(errs.InvalidParam), nil
	case errors.Is(err, service.ErrGenerationFailed):
		return codeResult(errs.GenerationFailed), err
	case errors.Is(err, service.ErrEvaluationFailed):
		return codeResult(errs.EvaluationFailed), err
	default:
		return systemErrorResult, err
	}
}

func newSession(sess domain.Session) Session {
	return Session{
		SessionID:            sess.SessionID,
		ResumeID:             sess.ResumeID,
		TotalQuestions:       sess.TotalQuestions(),
		CurrentQuestionIndex: sess.CurrentIndex,
		Status:               sess.Status.String(),
		Questions:            slice.Map(sess.Questions, func(_ int, src domain.Question) Question { return newQuestion(src) }),
		Ctime:                sess.Ctime,
		Utime:                sess.Utime,
	}
}

func newQuestion(q domain.Question) Question {
	return Question{
		QuestionIndex: q.Index,
		Category:      q.Category,
		Question:      q.Question,
		UserAnswer:    q.UserAnswer,
		Answered:      q.Answered,
	}
}

func newReport(r domain.Report) Report {
	return Report{
		SessionID:       r.SessionID,
		TotalQuestions:  r.TotalQuestions,
		OverallScore:    r.OverallScore,
		OverallFeedback: r.OverallFeedback,
		Strengths:       r.Strengths,
		Improvements:    r.Improvements,
		CategoryScores: slice.Map(r.CategoryScores, func(_ int, src domain.CategoryScore) CategoryScore {
			return CategoryScore{
				Category:      src.Category,
				Score:         src.Score,
				QuestionCount: src.QuestionCount,
			}
		}),
		QuestionDetails: slice.Map(r.QuestionDetails, func(_ int, src domain.QuestionEvaluation) QuestionEvaluation {
			return QuestionEvaluation{
				QuestionIndex: src.QuestionIndex,
				Question:      src.Question,
				Category:      src.Category,
				UserAnswer:    src.UserAnswer,
				Score:         src.Score,
				Feedback:      src.Feedback,
			}
		}),
		ReferenceAnswers: slice.Map(r.ReferenceAnswers, func(_ int, src domain.ReferenceAnswer) ReferenceAnswer {
			return ReferenceAnswer{
				QuestionIndex:   src.QuestionIndex,
				Question:        src.Question,
				ReferenceAnswer: src.ReferenceAnswer,
				KeyPoints:       src.KeyPoints,
			}
		}),
	}
}
