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
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/event"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	ErrSessionNotFound  = errors.New("面试会话不存在")
	ErrReportNotFound   = errors.New("面试报告不存在")
	ErrGenerationFailed = errors.New("面试题目生成失败")
	ErrEvaluationFailed = errors.New("面试评估失败")
	// ErrInvalidQuestionCount 题目数量至少为 1
	ErrInvalidQuestionCount = errors.New("无效的题目数量")

	ErrInvalidQuestionIndex  = domain.ErrInvalidQuestionIndex
	ErrAlreadyCompleted      = domain.ErrAlreadyCompleted
	ErrInterviewNotCompleted = domain.ErrInterviewNotCompleted
)

// SessionService 模拟面试会话的生命周期。
// 内存里的会话是唯一的真相，数据库只是尽力而为的影子，同步失败只记录日志。
// 只有关联了简历的会话才会同步到数据库。
//
//go:generate mockgen -source=./session.go -destination=./mocks/session.mock.go -package=svcmocks SessionService
type SessionService interface {
	// CreateOrResume 同一份简历有没结束的会话时直接返回它，否则出题创建新的会话
	CreateOrResume(ctx context.Context, req domain.CreateRequest) (domain.Session, error)
	GetSession(ctx context.Context, sid string) (domain.Session, error)
	// FindUnfinishedSession 没有的时候返回 ErrSessionNotFound
	FindUnfinishedSession(ctx context.Context, resumeID int64) (domain.Session, error)
	// GetCurrentQuestion 所有题目都已经提交的时候，第二个返回值为 false
	GetCurrentQuestion(ctx context.Context, sid string) (domain.Question, bool, error)
	SubmitAnswer(ctx context.Context, sid string, idx int, answer string) (domain.SubmitResult, error)
	// SaveAnswer 暂存答案，不会推进进度
	SaveAnswer(ctx context.Context, sid string, idx int, answer string) error
	CompleteEarly(ctx context.Context, sid string) error
	// GenerateReport 每次调用都会重新评估
	GenerateReport(ctx context.Context, sid string) (domain.Report, error)
	// GetReport 最近一次生成的报告
	GetReport(ctx context.Context, sid string) (domain.Report, error)
}

var _ SessionService = &sessionService{}

type sessionService struct {
	cache     cache.SessionCache
	repo      repository.SessionRepository
	generator QuestionGenerator
	evaluator Evaluator
	producer  event.EvaluatedEventProducer

	// locks 同一个会话的修改和同步串行执行
	locks syncx.Map[string, *sync.Mutex]
	// subjects 简历 ID 到本进程创建的会话 ID，数据库不可用时兜底
	subjects syncx.Map[int64, string]
	// reports 最近一次生成的报告，没有关联简历的会话只能从这里拿
	reports  syncx.Map[string, domain.Report]
	creating singleflight.Group

	logger *elog.Component
}

func NewSessionService(
	c cache.SessionCache,
	repo repository.SessionRepository,
	generator QuestionGenerator,
	evaluator Evaluator,
	producer event.EvaluatedEventProducer) SessionService {
	return &sessionService{
		cache:     c,
		repo:      repo,
		generator: generator,
		evaluator: evaluator,
		producer:  producer,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("interview")),
	}
}

func (s *sessionService) CreateOrResume(ctx context.Context, req domain.CreateRequest) (domain.Session, error) {
	if req.QuestionCount <= 0 {
		return domain.Session{}, fmt.Errorf("%w: %d", ErrInvalidQuestionCount, req.QuestionCount)
	}
	if req.ResumeID <= 0 {
		return s.create(ctx, req)
	}
	// 同一份简历并发创建时只会有一个请求真正执行，
	// 结果由所有等待者共享，不能跟着发起者的请求一起被取消
	ctx = context.WithoutCancel(ctx)
	val, err, _ := s.creating.Do(strconv.FormatInt(req.ResumeID, 10), func() (any, error) {
		sess, err := s.findUnfinished(ctx, req.ResumeID)
		if err == nil {
			sessionCounter.WithLabelValues("resumed").Inc()
			s.logger.Info("检测到未完成的面试会话，返回现有会话",
				elog.Int64("resumeId", req.ResumeID),
				elog.String("sid", sess.SessionID))
			return sess, nil
		}
		return s.create(ctx, req)
	})
	if err != nil {
		return domain.Session{}, err
	}
	return val.(domain.Session), nil
}

func (s *sessionService) create(ctx context.Context, req domain.CreateRequest) (domain.Session, error) {
	questions, err := s.generator.Generate(ctx, req.ResumeText, req.QuestionCount)
	if err != nil {
		if errors.Is(err, ErrGenerationFailed) {
			return domain.Session{}, err
		}
		return domain.Session{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if len(questions) < req.QuestionCount {
		return domain.Session{}, fmt.Errorf("%w: 需要 %d 道题，实际只有 %d 道",
			ErrGenerationFailed, req.QuestionCount, len(questions))
	}
	questions = questions[:req.QuestionCount]
	for i := range questions {
		questions[i].Index = i
		questions[i].UserAnswer = ""
		questions[i].Answered = false
	}

	now := time.Now().UnixMilli()
	sess := &domain.Session{
		SessionID:  shortuuid.New(),
		ResumeID:   req.ResumeID,
		ResumeText: req.ResumeText,
		Questions:  questions,
		Status:     domain.StatusCreated,
		Ctime:      now,
		Utime:      now,
	}
	// 先加锁再放入缓存，保证落库发生在其它修改之前
	unlock := s.lock(sess.SessionID)
	defer unlock()
	s.cache.Put(sess)
	sessionCounter.WithLabelValues("created").Inc()
	s.logger.Info("创建新面试会话",
		elog.String("sid", sess.SessionID),
		elog.Int("questionCount", req.QuestionCount),
		elog.Int64("resumeId", req.ResumeID))
	if sess.HasSubject() {
		s.subjects.Store(sess.ResumeID, sess.SessionID)
		s.mirror(ctx, sess, "saveSession", func(ctx context.Context) error {
			return s.repo.SaveSession(ctx, sess.Clone())
		})
	}
	return sess.Clone(), nil
}

func (s *sessionService) GetSession(ctx context.Context, sid string) (domain.Session, error) {
	sess, err := s.getOrRestore(ctx, sid)
	if err != nil {
		return domain.Session{}, err
	}
	unlock := s.lock(sid)
	defer unlock()
	return sess.Clone(), nil
}

func (s *sessionService) FindUnfinishedSession(ctx context.Context, resumeID int64) (domain.Session, error) {
	return s.findUnfinished(ctx, resumeID)
}

// findUnfinished 数据库里的记录只用来定位会话，内存里已经有的时候以内存为准。
// 数据库出错的时候当作没有找到，再尝试本进程创建过的会话。
func (s *sessionService) findUnfinished(ctx context.Context, resumeID int64) (domain.Session, error) {
	stored, err := s.repo.FindUnfinishedSession(ctx, resumeID)
	switch {
	case err == nil:
		sess, err1 := s.resolve(ctx, stored)
		if err1 == nil {
			snapshot := s.snapshot(sess)
			if snapshot.Status.IsUnfinished() {
				return snapshot, nil
			}
		} else {
			s.logger.Error("恢复未完成会话失败",
				elog.String("sid", stored.SessionID),
				elog.FieldErr(err1))
		}
	case errors.Is(err, repository.ErrSessionNotFound):
	default:
		s.logger.Error("查找未完成会话失败",
			elog.Int64("resumeId", resumeID),
			elog.FieldErr(err))
	}

	sid, ok := s.subjects.Load(resumeID)
	if ok {
		if sess, ok := s.cache.Get(sid); ok {
			snapshot := s.snapshot(sess)
			if snapshot.Status.IsUnfinished() {
				return snapshot, nil
			}
		}
	}
	return domain.Session{}, ErrSessionNotFound
}

func (s *sessionService) GetCurrentQuestion(ctx context.Context, sid string) (domain.Question, bool, error) {
	sess, err := s.getOrRestore(ctx, sid)
	if err != nil {
		return domain.Question{}, false, err
	}
	unlock := s.lock(sid)
	defer unlock()
	q, ok := sess.CurrentQuestion()
	if !ok {
		return domain.Question{}, false, nil
	}
	if sess.Start() {
		sess.Utime = time.Now().UnixMilli()
		s.mirror(ctx, sess, "updateSessionStatus", func(ctx context.Context) error {
			return s.repo.UpdateSessionStatus(ctx, sid, domain.StatusInProgress)
		})
	}
	return q, true, nil
}

func (s *sessionService) SubmitAnswer(ctx context.Context, sid string, idx int, answer string) (domain.SubmitResult, error) {
	sess, err := s.getOrRestore(ctx, sid)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	unlock := s.lock(sid)
	defer unlock()
	err = sess.RecordAnswer(idx, answer)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	sess.Advance(idx)
	sess.Utime = time.Now().UnixMilli()
	q := sess.Questions[idx]
	currentIndex, status := sess.CurrentIndex, sess.Status
	s.mirror(ctx, sess, "submitAnswer", func(ctx context.Context) error {
		// 分数在生成报告的时候回写
		err := s.repo.SaveAnswer(ctx, sid, domain.Answer{
			QuestionIndex: idx,
			Question:      q.Question,
			Category:      q.Category,
			UserAnswer:    answer,
		})
		if err != nil {
			return err
		}
		err = s.repo.UpdateCurrentQuestionIndex(ctx, sid, currentIndex)
		if err != nil {
			return err
		}
		return s.repo.UpdateSessionStatus(ctx, sid, status)
	})
	s.logger.Debug("提交答案",
		elog.String("sid", sid),
		elog.Int("questionIndex", idx),
		elog.Int("remaining", sess.TotalQuestions()-sess.CurrentIndex))

	res := domain.SubmitResult{
		CurrentIndex:   sess.CurrentIndex,
		TotalQuestions: sess.TotalQuestions(),
	}
	if next, ok := sess.CurrentQuestion(); ok {
		res.HasNext = true
		res.NextQuestion = next
	}
	return res, nil
}

func (s *sessionService) SaveAnswer(ctx context.Context, sid string, idx int, answer string) error {
	sess, err := s.getOrRestore(ctx, sid)
	if err != nil {
		return err
	}
	unlock := s.lock(sid)
	defer unlock()
	err = sess.RecordAnswer(idx, answer)
	if err != nil {
		return err
	}
	started := sess.Start()
	sess.Utime = time.Now().UnixMilli()
	q := sess.Questions[idx]
	s.mirror(ctx, sess, "saveAnswer", func(ctx context.Context) error {
		err := s.repo.SaveAnswer(ctx, sid, domain.Answer{
			QuestionIndex: idx,
			Question:      q.Question,
			Category:      q.Category,
			UserAnswer:    answer,
		})
		if err != nil || !started {
			return err
		}
		return s.repo.UpdateSessionStatus(ctx, sid, domain.StatusInProgress)
	})
	return nil
}

func (s *sessionService) CompleteEarly(ctx context.Context, sid string) error {
	sess, err := s.getOrRestore(ctx, sid)
	if err != nil {
		return err
	}
	unlock := s.lock(sid)
	defer unlock()
	err = sess.Complete()
	if err != nil {
		return err
	}
	sess.Utime = time.Now().UnixMilli()
	s.mirror(ctx, sess, "updateSessionStatus", func(ctx context.Context) error {
		return s.repo.UpdateSessionStatus(ctx, sid, domain.StatusCompleted)
	})
	s.logger.Info("提前交卷",
		elog.String("sid", sid),
		elog.Int("answered", sess.AnsweredCount()),
		elog.Int("total", sess.TotalQuestions()))
	return nil
}

func (s *sessionService) GenerateReport(ctx context.Context, sid string) (domain.Report, error) {
	sess, err := s.getOrRestore(ctx, sid)
	if err != nil {
		return domain.Report{}, err
	}
	snapshot := s.snapshot(sess)
	if !snapshot.Status.IsFinished() {
		return domain.Report{}, ErrInterviewNotCompleted
	}

	// 评估比较慢，不持有锁。结束之后的会话状态不会再回退
	report, err := s.evaluator.Evaluate(ctx, sid, snapshot.ResumeText, snapshot.Questions)
	if err != nil {
		reportCounter.WithLabelValues("failed").Inc()
		if errors.Is(err, ErrEvaluationFailed) {
			return domain.Report{}, err
		}
		return domain.Report{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	report.SessionID = sid
	reportCounter.WithLabelValues("success").Inc()

	unlock := s.lock(sid)
	err = sess.MarkEvaluated()
	if err != nil {
		unlock()
		return domain.Report{}, err
	}
	sess.Utime = time.Now().UnixMilli()
	s.reports.Store(sid, report)
	s.mirror(ctx, sess, "saveReport", func(ctx context.Context) error {
		return s.repo.SaveReport(ctx, sid, report)
	})
	evt := event.NewInterviewEvaluatedEvent(*sess, report)
	unlock()

	if err1 := s.producer.Produce(ctx, evt); err1 != nil {
		s.logger.Error("发送面试评估事件失败",
			elog.String("sid", sid),
			elog.FieldErr(err1))
	}
	return report, nil
}

func (s *sessionService) GetReport(ctx context.Context, sid string) (domain.Report, error) {
	if report, ok := s.reports.Load(sid); ok {
		return report, nil
	}
	report, err := s.repo.FindReport(ctx, sid)
	switch {
	case err == nil:
		return report, nil
	case errors.Is(err, repository.ErrReportNotFound), errors.Is(err, repository.ErrSessionNotFound):
		return domain.Report{}, ErrReportNotFound
	default:
		return domain.Report{}, err
	}
}

// getOrRestore 缓存没有的时候从数据库恢复，恢复失败一律视为会话不存在
func (s *sessionService) getOrRestore(ctx context.Context, sid string) (*domain.Session, error) {
	if sess, ok := s.cache.Get(sid); ok {
		return sess, nil
	}
	var (
		stored  domain.Session
		answers []domain.Answer
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		stored, err = s.repo.FindBySessionID(ctx, sid)
		return err
	})
	eg.Go(func() error {
		var err error
		answers, err = s.repo.FindAnswersBySessionID(ctx, sid)
		return err
	})
	if err := eg.Wait(); err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			s.logger.Error("从数据库恢复会话失败",
				elog.String("sid", sid),
				elog.FieldErr(err))
		}
		return nil, ErrSessionNotFound
	}
	return s.restore(stored, answers), nil
}

// resolve 数据库定位到的会话，内存里有的时候用内存的版本
func (s *sessionService) resolve(ctx context.Context, stored domain.Session) (*domain.Session, error) {
	if sess, ok := s.cache.Get(stored.SessionID); ok {
		return sess, nil
	}
	answers, err := s.repo.FindAnswersBySessionID(ctx, stored.SessionID)
	if err != nil {
		return nil, err
	}
	return s.restore(stored, answers), nil
}

// restore 并发恢复同一个会话的时候，只有第一个放进缓存的对象生效
func (s *sessionService) restore(stored domain.Session, answers []domain.Answer) *domain.Session {
	stored.ApplyAnswers(answers)
	sess := &stored
	actual := s.cache.PutIfAbsent(sess)
	if actual == sess {
		sessionCounter.WithLabelValues("restored").Inc()
		s.logger.Info("从数据库恢复会话",
			elog.String("sid", sess.SessionID),
			elog.Int("currentIndex", sess.CurrentIndex),
			elog.String("status", sess.Status.String()))
	}
	return actual
}

func (s *sessionService) snapshot(sess *domain.Session) domain.Session {
	unlock := s.lock(sess.SessionID)
	defer unlock()
	return sess.Clone()
}

func (s *sessionService) lock(sid string) func() {
	mu, _ := s.locks.LoadOrStore(sid, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// mirror 尽力而为地同步到数据库，失败只记录日志，不影响内存中的结果
func (s *sessionService) mirror(ctx context.Context, sess *domain.Session, op string, fn func(ctx context.Context) error) {
	if !sess.HasSubject() {
		return
	}
	if err := fn(ctx); err != nil {
		persistFailureCounter.WithLabelValues(op).Inc()
		s.logger.Warn("同步面试会话到数据库失败",
			elog.String("sid", sess.SessionID),
			elog.String("op", op),
			elog.FieldErr(err))
	}
}
