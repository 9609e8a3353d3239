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

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrSessionNotFound = dao.ErrRecordNotFound
	ErrReportNotFound  = errors.New("面试报告不存在")
)

// SessionRepository 会话的持久化影子。
// 查询到的会话只包含题目，作答记录需要通过 FindAnswersBySessionID 另外获取。
//
//go:generate mockgen -source=./session.go -destination=../../mocks/repository.mock.go -package=intrmocks SessionRepository
type SessionRepository interface {
	SaveSession(ctx context.Context, sess domain.Session) error
	// FindUnfinishedSession 找到该简历最近一次没有结束的会话
	FindUnfinishedSession(ctx context.Context, resumeID int64) (domain.Session, error)
	FindBySessionID(ctx context.Context, sid string) (domain.Session, error)
	SaveAnswer(ctx context.Context, sid string, ans domain.Answer) error
	UpdateCurrentQuestionIndex(ctx context.Context, sid string, idx int) error
	UpdateSessionStatus(ctx context.Context, sid string, status domain.SessionStatus) error
	FindAnswersBySessionID(ctx context.Context, sid string) ([]domain.Answer, error)
	SaveReport(ctx context.Context, sid string, report domain.Report) error
	FindReport(ctx context.Context, sid string) (domain.Report, error)
}

type sessionRepository struct {
	dao    dao.SessionDAO
	cache  cache.ReportCache
	logger *elog.Component
}

func NewSessionRepository(d dao.SessionDAO, c cache.ReportCache) SessionRepository {
	return &sessionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, sess domain.Session) error {
	_, err := r.dao.Insert(ctx, r.toEntity(sess))
	return err
}

func (r *sessionRepository) FindUnfinishedSession(ctx context.Context, resumeID int64) (domain.Session, error) {
	statuses := []string{domain.StatusCreated.String(), domain.StatusInProgress.String()}
	s, err := r.dao.FindLatestByResumeID(ctx, resumeID, statuses)
	if err != nil {
		return domain.Session{}, err
	}
	return r.toDomain(s), nil
}

func (r *sessionRepository) FindBySessionID(ctx context.Context, sid string) (domain.Session, error) {
	s, err := r.dao.FindBySessionID(ctx, sid)
	if err != nil {
		return domain.Session{}, err
	}
	return r.toDomain(s), nil
}

func (r *sessionRepository) SaveAnswer(ctx context.Context, sid string, ans domain.Answer) error {
	return r.dao.UpsertAnswer(ctx, dao.InterviewAnswer{
		SessionID:     sid,
		QuestionIndex: ans.QuestionIndex,
		Question:      ans.Question,
		Category:      ans.Category,
		UserAnswer:    ans.UserAnswer,
		Score:         ans.Score,
		Feedback:      ans.Feedback,
	})
}

func (r *sessionRepository) UpdateCurrentQuestionIndex(ctx context.Context, sid string, idx int) error {
	return r.dao.UpdateCurrentQuestionIndex(ctx, sid, idx)
}

func (r *sessionRepository) UpdateSessionStatus(ctx context.Context, sid string, status domain.SessionStatus) error {
	return r.dao.UpdateStatus(ctx, sid, status.String())
}

func (r *sessionRepository) FindAnswersBySessionID(ctx context.Context, sid string) ([]domain.Answer, error) {
	answers, err := r.dao.FindAnswersBySessionID(ctx, sid)
	if err != nil {
		return nil, err
	}
	return slice.Map(answers, func(_ int, src dao.InterviewAnswer) domain.Answer {
		return r.toDomainAnswer(src)
	}), nil
}

func (r *sessionRepository) SaveReport(ctx context.Context, sid string, report domain.Report) error {
	val, err := json.Marshal(report)
	if err != nil {
		return err
	}
	sess := dao.InterviewSession{
		SessionID:    sid,
		Status:       domain.StatusEvaluated.String(),
		OverallScore: report.OverallScore,
		Report:       sql.NullString{String: string(val), Valid: true},
	}
	answers := slice.Map(report.QuestionDetails, func(_ int, src domain.QuestionEvaluation) dao.InterviewAnswer {
		return dao.InterviewAnswer{
			QuestionIndex: src.QuestionIndex,
			Score:         src.Score,
			Feedback:      src.Feedback,
		}
	})
	err = r.dao.SaveReport(ctx, sess, answers)
	if err != nil {
		return err
	}
	report.SessionID = sid
	if err1 := r.cache.SetReport(ctx, report); err1 != nil {
		r.logger.Error("缓存面试报告失败",
			elog.String("sid", sid),
			elog.FieldErr(err1))
	}
	return nil
}

func (r *sessionRepository) FindReport(ctx context.Context, sid string) (domain.Report, error) {
	res, err := r.cache.GetReport(ctx, sid)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrReportNotFound) {
		r.logger.Error("读取面试报告缓存失败",
			elog.String("sid", sid),
			elog.FieldErr(err))
	}
	s, err := r.dao.FindBySessionID(ctx, sid)
	if err != nil {
		return domain.Report{}, err
	}
	if !s.Report.Valid {
		return domain.Report{}, ErrReportNotFound
	}
	err = json.Unmarshal([]byte(s.Report.String), &res)
	if err != nil {
		return domain.Report{}, err
	}
	if err1 := r.cache.SetReport(ctx, res); err1 != nil {
		r.logger.Error("回写面试报告缓存失败",
			elog.String("sid", sid),
			elog.FieldErr(err1))
	}
	return res, nil
}

func (r *sessionRepository) toEntity(sess domain.Session) dao.InterviewSession {
	return dao.InterviewSession{
		SessionID:            sess.SessionID,
		ResumeID:             sess.ResumeID,
		ResumeText:           sess.ResumeText,
		TotalQuestions:       sess.TotalQuestions(),
		CurrentQuestionIndex: sess.CurrentIndex,
		Status:               sess.Status.String(),
		Questions: sqlx.JsonColumn[[]dao.Question]{
			Val: slice.Map(sess.Questions, func(_ int, src domain.Question) dao.Question {
				return dao.Question{
					Index:           src.Index,
					Category:        src.Category,
					Question:        src.Question,
					ReferenceAnswer: src.ReferenceAnswer,
					KeyPoints:       src.KeyPoints,
				}
			}),
			Valid: true,
		},
		Ctime: sess.Ctime,
		Utime: sess.Utime,
	}
}

func (r *sessionRepository) toDomain(s dao.InterviewSession) domain.Session {
	res := domain.Session{
		SessionID:    s.SessionID,
		ResumeID:     s.ResumeID,
		ResumeText:   s.ResumeText,
		CurrentIndex: s.CurrentQuestionIndex,
		Status:       domain.SessionStatus(s.Status),
		Ctime:        s.Ctime,
		Utime:        s.Utime,
	}
	if s.Questions.Valid {
		// 位置就是题号，不信任快照里的 index
		res.Questions = slice.Map(s.Questions.Val, func(idx int, src dao.Question) domain.Question {
			return domain.Question{
				Index:           idx,
				Category:        src.Category,
				Question:        src.Question,
				ReferenceAnswer: src.ReferenceAnswer,
				KeyPoints:       src.KeyPoints,
			}
		})
	}
	return res
}

func (r *sessionRepository) toDomainAnswer(a dao.InterviewAnswer) domain.Answer {
	return domain.Answer{
		QuestionIndex: a.QuestionIndex,
		Question:      a.Question,
		Category:      a.Category,
		UserAnswer:    a.UserAnswer,
		Score:         a.Score,
		Feedback:      a.Feedback,
	}
}
