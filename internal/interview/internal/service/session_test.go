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
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/event"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/repository/cache"
	intrmocks "github.com/ecodeclub/interview-guide/internal/interview/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCategories = []string{"Java", "MySQL"}

type fakeGenerator struct {
	err   error
	calls atomic.Int32
}

func (g *fakeGenerator) Generate(ctx context.Context, resumeText string, count int) ([]domain.Question, error) {
	g.calls.Add(1)
	if g.err != nil {
		return nil, g.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := make([]domain.Question, 0, count)
	for i := 0; i < count; i++ {
		res = append(res, domain.Question{
			// 故意给出错误的下标，由服务重新编号
			Index:           i + 10,
			Category:        testCategories[i%len(testCategories)],
			Question:        fmt.Sprintf("问题%d", i),
			ReferenceAnswer: fmt.Sprintf("参考答案%d", i),
			KeyPoints:       []string{"要点"},
		})
	}
	return res, nil
}

// fakeEvaluator 作答的题目 80 分，没作答的 0 分
type fakeEvaluator struct {
	err   error
	calls atomic.Int32
}

func (e *fakeEvaluator) Evaluate(ctx context.Context, sid string, resumeText string, questions []domain.Question) (domain.Report, error) {
	e.calls.Add(1)
	if e.err != nil {
		return domain.Report{}, e.err
	}
	report := domain.Report{SessionID: sid, TotalQuestions: len(questions)}
	sum := 0
	for _, q := range questions {
		d := domain.QuestionEvaluation{
			QuestionIndex: q.Index,
			Question:      q.Question,
			Category:      q.Category,
			UserAnswer:    q.UserAnswer,
			Feedback:      unansweredFeedback,
		}
		if q.Answered {
			d.Score = 80
			d.Feedback = "不错"
		}
		sum += d.Score
		report.QuestionDetails = append(report.QuestionDetails, d)
	}
	if len(questions) > 0 {
		report.OverallScore = sum / len(questions)
	}
	return report, nil
}

func newTestService(t *testing.T, repo repository.SessionRepository) (*sessionService, *fakeGenerator, *fakeEvaluator) {
	ctrl := gomock.NewController(t)
	producer := intrmocks.NewMockEvaluatedEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return newTestServiceWithProducer(repo, producer)
}

func newTestServiceWithProducer(repo repository.SessionRepository,
	producer event.EvaluatedEventProducer) (*sessionService, *fakeGenerator, *fakeEvaluator) {
	g, e := &fakeGenerator{}, &fakeEvaluator{}
	svc := NewSessionService(cache.NewLocalSessionCache(), repo, g, e, producer)
	return svc.(*sessionService), g, e
}

func TestSessionService_CreateOrResume(t *testing.T) {
	t.Run("创建的会话", func(t *testing.T) {
		svc, _, _ := newTestService(t, newMemRepository())
		sess, err := svc.CreateOrResume(context.Background(), domain.CreateRequest{
			ResumeID: 1, ResumeText: "简历", QuestionCount: 5,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.SessionID)
		assert.Equal(t, domain.StatusCreated, sess.Status)
		assert.Equal(t, 0, sess.CurrentIndex)
		require.Len(t, sess.Questions, 5)
		for i, q := range sess.Questions {
			assert.Equal(t, i, q.Index)
			assert.False(t, q.Answered)
		}
	})

	t.Run("同一份简历恢复未完成的会话", func(t *testing.T) {
		repo := newMemRepository()
		svc, g, _ := newTestService(t, repo)
		ctx := context.Background()
		req := domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 3}
		first, err := svc.CreateOrResume(ctx, req)
		require.NoError(t, err)
		_, err = svc.SubmitAnswer(ctx, first.SessionID, 0, "a0")
		require.NoError(t, err)

		second, err := svc.CreateOrResume(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first.SessionID, second.SessionID)
		assert.Equal(t, 1, second.CurrentIndex)
		assert.Equal(t, int32(1), g.calls.Load())
	})

	t.Run("已经结束的会话不会被恢复", func(t *testing.T) {
		svc, g, _ := newTestService(t, newMemRepository())
		ctx := context.Background()
		req := domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 3}
		first, err := svc.CreateOrResume(ctx, req)
		require.NoError(t, err)
		require.NoError(t, svc.CompleteEarly(ctx, first.SessionID))

		second, err := svc.CreateOrResume(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, first.SessionID, second.SessionID)
		assert.Equal(t, int32(2), g.calls.Load())
	})

	t.Run("没有关联简历每次都创建新会话", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		// 没有设置任何预期，访问数据库会直接失败
		repo := intrmocks.NewMockSessionRepository(ctrl)
		svc, _, _ := newTestService(t, repo)
		ctx := context.Background()
		req := domain.CreateRequest{ResumeText: "简历", QuestionCount: 2}
		first, err := svc.CreateOrResume(ctx, req)
		require.NoError(t, err)
		second, err := svc.CreateOrResume(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, first.SessionID, second.SessionID)

		_, err = svc.SubmitAnswer(ctx, first.SessionID, 0, "a0")
		require.NoError(t, err)
		require.NoError(t, svc.SaveAnswer(ctx, first.SessionID, 1, "a1"))
		require.NoError(t, svc.CompleteEarly(ctx, first.SessionID))
		_, err = svc.GenerateReport(ctx, first.SessionID)
		require.NoError(t, err)
	})

	t.Run("出题失败", func(t *testing.T) {
		repo := newMemRepository()
		svc, g, _ := newTestService(t, repo)
		g.err = errors.New("mock error")
		_, err := svc.CreateOrResume(context.Background(), domain.CreateRequest{
			ResumeID: 1, ResumeText: "简历", QuestionCount: 3,
		})
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Empty(t, repo.sessions)
	})

	t.Run("无效的题目数量", func(t *testing.T) {
		testCases := []struct {
			name string
			req  domain.CreateRequest
		}{
			{name: "关联简历_0道题", req: domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 0}},
			{name: "关联简历_负数", req: domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: -1}},
			{name: "没有简历_0道题", req: domain.CreateRequest{ResumeText: "简历", QuestionCount: 0}},
			{name: "没有简历_负数", req: domain.CreateRequest{ResumeText: "简历", QuestionCount: -1}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				repo := newMemRepository()
				svc, g, _ := newTestService(t, repo)
				var err error
				assert.NotPanics(t, func() {
					_, err = svc.CreateOrResume(context.Background(), tc.req)
				})
				assert.ErrorIs(t, err, ErrInvalidQuestionCount)
				assert.Equal(t, int32(0), g.calls.Load())
				assert.Empty(t, repo.sessions)
				// 之后正常创建不受影响
				sess, err := svc.CreateOrResume(context.Background(), domain.CreateRequest{
					ResumeID: tc.req.ResumeID, ResumeText: "简历", QuestionCount: 2,
				})
				require.NoError(t, err)
				assert.Len(t, sess.Questions, 2)
			})
		}
	})

	t.Run("发起者取消不影响同一份简历的创建", func(t *testing.T) {
		repo := newMemRepository()
		svc, _, _ := newTestService(t, repo)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{
			ResumeID: 1, ResumeText: "简历", QuestionCount: 3,
		})
		require.NoError(t, err)
		assert.Len(t, sess.Questions, 3)

		// 其它请求拿到的是同一个会话
		again, err := svc.CreateOrResume(context.Background(), domain.CreateRequest{
			ResumeID: 1, ResumeText: "简历", QuestionCount: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, sess.SessionID, again.SessionID)
	})

	t.Run("并发创建只会出一次题", func(t *testing.T) {
		svc, g, _ := newTestService(t, newMemRepository())
		const n = 10
		ids := make([]string, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sess, err := svc.CreateOrResume(context.Background(), domain.CreateRequest{
					ResumeID: 1, ResumeText: "简历", QuestionCount: 3,
				})
				assert.NoError(t, err)
				ids[i] = sess.SessionID
			}()
		}
		wg.Wait()
		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
		assert.Equal(t, int32(1), g.calls.Load())
	})
}

func TestSessionService_GetCurrentQuestion(t *testing.T) {
	repo := newMemRepository()
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 2})
	require.NoError(t, err)
	sid := sess.SessionID

	q, ok, err := svc.GetCurrentQuestion(ctx, sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, q.Index)
	// 第一次出题之后进入 IN_PROGRESS
	assert.Equal(t, domain.StatusInProgress, repo.session(sid).Status)

	res, err := svc.SubmitAnswer(ctx, sid, 0, "a0")
	require.NoError(t, err)
	q, ok, err = svc.GetCurrentQuestion(ctx, sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, res.NextQuestion, q)
	assert.Equal(t, 1, q.Index)

	_, err = svc.SubmitAnswer(ctx, sid, 1, "a1")
	require.NoError(t, err)
	_, ok, err = svc.GetCurrentQuestion(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = svc.GetCurrentQuestion(ctx, "not-exist")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_SubmitAnswer(t *testing.T) {
	testCases := []struct {
		name       string
		before     func(t *testing.T, svc *sessionService, sid string)
		idx        int
		wantErr    error
		wantResult domain.SubmitResult
		wantStatus domain.SessionStatus
	}{
		{
			name:       "提交第一题",
			idx:        0,
			wantResult: domain.SubmitResult{HasNext: true, CurrentIndex: 1, TotalQuestions: 3},
			wantStatus: domain.StatusInProgress,
		},
		{
			name: "提交最后一题",
			before: func(t *testing.T, svc *sessionService, sid string) {
				for i := 0; i < 2; i++ {
					_, err := svc.SubmitAnswer(context.Background(), sid, i, "a")
					require.NoError(t, err)
				}
			},
			idx:        2,
			wantResult: domain.SubmitResult{CurrentIndex: 3, TotalQuestions: 3},
			wantStatus: domain.StatusCompleted,
		},
		{
			name: "重新提交更早的题目",
			before: func(t *testing.T, svc *sessionService, sid string) {
				for i := 0; i < 2; i++ {
					_, err := svc.SubmitAnswer(context.Background(), sid, i, "a")
					require.NoError(t, err)
				}
			},
			idx:        0,
			wantResult: domain.SubmitResult{HasNext: true, CurrentIndex: 1, TotalQuestions: 3},
			wantStatus: domain.StatusInProgress,
		},
		{
			name:       "下标越界",
			idx:        3,
			wantErr:    ErrInvalidQuestionIndex,
			wantStatus: domain.StatusCreated,
		},
		{
			name:       "负数下标",
			idx:        -1,
			wantErr:    ErrInvalidQuestionIndex,
			wantStatus: domain.StatusCreated,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newTestService(t, newMemRepository())
			ctx := context.Background()
			sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 3})
			require.NoError(t, err)
			if tc.before != nil {
				tc.before(t, svc, sess.SessionID)
			}
			res, err := svc.SubmitAnswer(ctx, sess.SessionID, tc.idx, "答案")
			assert.ErrorIs(t, err, tc.wantErr)
			after, err1 := svc.GetSession(ctx, sess.SessionID)
			require.NoError(t, err1)
			assert.Equal(t, tc.wantStatus, after.Status)
			if err != nil {
				return
			}
			if tc.wantResult.HasNext {
				assert.Equal(t, tc.wantResult.CurrentIndex, res.NextQuestion.Index)
				res.NextQuestion = domain.Question{}
			}
			assert.Equal(t, tc.wantResult, res)
			assert.Equal(t, "答案", after.Questions[tc.idx].UserAnswer)
		})
	}
}

func TestSessionService_SubmitAnswerMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := intrmocks.NewMockSessionRepository(ctrl)
	repo.EXPECT().FindUnfinishedSession(gomock.Any(), int64(1)).Return(domain.Session{}, repository.ErrSessionNotFound)
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 1})
	require.NoError(t, err)
	sid := sess.SessionID

	gomock.InOrder(
		repo.EXPECT().SaveAnswer(gomock.Any(), sid, domain.Answer{
			QuestionIndex: 0, Question: "问题0", Category: "Java", UserAnswer: "a0",
		}).Return(nil),
		repo.EXPECT().UpdateCurrentQuestionIndex(gomock.Any(), sid, 1).Return(nil),
		// 同步的是内存里真实的状态
		repo.EXPECT().UpdateSessionStatus(gomock.Any(), sid, domain.StatusCompleted).Return(nil),
	)
	_, err = svc.SubmitAnswer(ctx, sid, 0, "a0")
	require.NoError(t, err)
}

func TestSessionService_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := intrmocks.NewMockSessionRepository(ctrl)
	dbErr := errors.New("db down")
	repo.EXPECT().FindUnfinishedSession(gomock.Any(), gomock.Any()).Return(domain.Session{}, dbErr).AnyTimes()
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(dbErr).AnyTimes()
	repo.EXPECT().SaveAnswer(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr).AnyTimes()
	repo.EXPECT().UpdateSessionStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr).AnyTimes()
	repo.EXPECT().SaveReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr).AnyTimes()
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()
	req := domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 2}

	sess, err := svc.CreateOrResume(ctx, req)
	require.NoError(t, err)
	sid := sess.SessionID
	// 数据库不可用的时候，还能找到本进程创建的会话
	again, err := svc.CreateOrResume(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, sid, again.SessionID)

	res, err := svc.SubmitAnswer(ctx, sid, 0, "a0")
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentIndex)
	require.NoError(t, svc.SaveAnswer(ctx, sid, 1, "a1"))
	require.NoError(t, svc.CompleteEarly(ctx, sid))
	report, err := svc.GenerateReport(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 80, report.OverallScore)

	got, err := svc.GetReport(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestSessionService_SaveAnswer(t *testing.T) {
	repo := newMemRepository()
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 3})
	require.NoError(t, err)
	sid := sess.SessionID

	require.NoError(t, svc.SaveAnswer(ctx, sid, 1, "v1"))
	require.NoError(t, svc.SaveAnswer(ctx, sid, 1, "v2"))
	after, err := svc.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 0, after.CurrentIndex)
	assert.Equal(t, domain.StatusInProgress, after.Status)
	assert.Equal(t, "v2", after.Questions[1].UserAnswer)

	answers := repo.answerList(sid)
	require.Len(t, answers, 1)
	assert.Equal(t, "v2", answers[0].UserAnswer)
	assert.Equal(t, 0, repo.session(sid).CurrentIndex)
	assert.Equal(t, domain.StatusInProgress, repo.session(sid).Status)

	assert.ErrorIs(t, svc.SaveAnswer(ctx, sid, 3, "越界"), ErrInvalidQuestionIndex)
	assert.ErrorIs(t, svc.SaveAnswer(ctx, "not-exist", 0, "a"), ErrSessionNotFound)
}

func TestSessionService_CompleteEarly(t *testing.T) {
	repo := newMemRepository()
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 3})
	require.NoError(t, err)
	sid := sess.SessionID

	require.NoError(t, svc.CompleteEarly(ctx, sid))
	assert.Equal(t, domain.StatusCompleted, repo.session(sid).Status)
	assert.ErrorIs(t, svc.CompleteEarly(ctx, sid), ErrAlreadyCompleted)
	assert.ErrorIs(t, svc.CompleteEarly(ctx, "not-exist"), ErrSessionNotFound)

	_, err = svc.FindUnfinishedSession(ctx, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_GenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := intrmocks.NewMockEvaluatedEventProducer(ctrl)
	repo := newMemRepository()
	svc, _, e := newTestServiceWithProducer(repo, producer)
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 3})
	require.NoError(t, err)
	sid := sess.SessionID

	_, err = svc.GenerateReport(ctx, sid)
	assert.ErrorIs(t, err, ErrInterviewNotCompleted)
	_, err = svc.GetReport(ctx, sid)
	assert.ErrorIs(t, err, ErrReportNotFound)

	_, err = svc.SubmitAnswer(ctx, sid, 0, "a0")
	require.NoError(t, err)
	require.NoError(t, svc.CompleteEarly(ctx, sid))

	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.InterviewEvaluatedEvent) error {
			assert.Equal(t, sid, evt.SessionID)
			assert.Equal(t, int64(1), evt.ResumeID)
			assert.Equal(t, 3, evt.TotalQuestions)
			assert.Equal(t, 26, evt.OverallScore)
			return nil
		})
	report, err := svc.GenerateReport(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, sid, report.SessionID)
	assert.Equal(t, 26, report.OverallScore)
	assert.Equal(t, domain.StatusEvaluated, repo.session(sid).Status)
	assert.Equal(t, report, repo.reports[sid])

	// 可以重复生成，事件发送失败不影响结果
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
	_, err = svc.GenerateReport(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, int32(2), e.calls.Load())

	after, err := svc.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEvaluated, after.Status)

	// 换一个进程之后从数据库读取
	other, _, _ := newTestService(t, repo)
	got, err := other.GetReport(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestSessionService_GenerateReportFailed(t *testing.T) {
	repo := newMemRepository()
	svc, _, e := newTestService(t, repo)
	e.err = errors.New("mock error")
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 1})
	require.NoError(t, err)
	require.NoError(t, svc.CompleteEarly(ctx, sess.SessionID))

	_, err = svc.GenerateReport(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrEvaluationFailed)
	after, err := svc.GetSession(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, after.Status)
}

func TestSessionService_Restore(t *testing.T) {
	repo := newMemRepository()
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: 3})
	require.NoError(t, err)
	sid := sess.SessionID
	_, err = svc.SubmitAnswer(ctx, sid, 0, "a0")
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, sid, 1, "a1")
	require.NoError(t, err)
	before, err := svc.GetSession(ctx, sid)
	require.NoError(t, err)

	// 缓存丢失，例如进程重启
	restarted, _, _ := newTestService(t, repo)
	after, err := restarted.GetSession(ctx, sid)
	require.NoError(t, err)
	before.Utime, after.Utime = 0, 0
	assert.Equal(t, before, after)

	q, ok, err := restarted.GetCurrentQuestion(ctx, sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, q.Index)

	found, err := restarted.FindUnfinishedSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, sid, found.SessionID)

	_, err = restarted.GetSession(ctx, "not-exist")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_RestoreFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := intrmocks.NewMockSessionRepository(ctrl)
	repo.EXPECT().FindBySessionID(gomock.Any(), "sid").Return(domain.Session{}, errors.New("db down"))
	repo.EXPECT().FindAnswersBySessionID(gomock.Any(), "sid").Return(nil, nil)
	svc, _, _ := newTestService(t, repo)
	_, err := svc.GetSession(context.Background(), "sid")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// TestSessionService_Scenario 完整地走一遍面试流程
func TestSessionService_Scenario(t *testing.T) {
	repo := newMemRepository()
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 7, ResumeText: "简历", QuestionCount: 3})
	require.NoError(t, err)
	sid := sess.SessionID

	for i := 0; i < 3; i++ {
		q, ok, err := svc.GetCurrentQuestion(ctx, sid)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, i, q.Index)
		res, err := svc.SubmitAnswer(ctx, sid, i, fmt.Sprintf("a%d", i))
		require.NoError(t, err)
		assert.Equal(t, i < 2, res.HasNext)
	}
	after, err := svc.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, after.Status)

	report, err := svc.GenerateReport(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 80, report.OverallScore)
	assert.Len(t, report.QuestionDetails, 3)
	after, err = svc.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEvaluated, after.Status)
	assert.Len(t, repo.answerList(sid), 3)
}

func TestSessionService_CompleteEarlyScenario(t *testing.T) {
	svc, _, _ := newTestService(t, newMemRepository())
	ctx := context.Background()
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 8, ResumeText: "简历", QuestionCount: 3})
	require.NoError(t, err)
	sid := sess.SessionID

	_, err = svc.SubmitAnswer(ctx, sid, 0, "a0")
	require.NoError(t, err)
	res, err := svc.SubmitAnswer(ctx, sid, 1, "a1")
	require.NoError(t, err)
	assert.True(t, res.HasNext)
	assert.Equal(t, 2, res.CurrentIndex)
	assert.Equal(t, 2, res.NextQuestion.Index)
	after, err := svc.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, after.Status)

	// 第三题没有作答也可以交卷
	require.NoError(t, svc.CompleteEarly(ctx, sid))
	after, err = svc.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, after.Status)

	report, err := svc.GenerateReport(ctx, sid)
	require.NoError(t, err)
	require.Len(t, report.QuestionDetails, 3)
	assert.Equal(t, "", report.QuestionDetails[2].UserAnswer)
	assert.Equal(t, 0, report.QuestionDetails[2].Score)
}

func TestSessionService_ConcurrentSubmit(t *testing.T) {
	repo := newMemRepository()
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()
	const n = 20
	sess, err := svc.CreateOrResume(ctx, domain.CreateRequest{ResumeID: 1, ResumeText: "简历", QuestionCount: n})
	require.NoError(t, err)
	sid := sess.SessionID

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitAnswer(ctx, sid, i, fmt.Sprintf("a%d", i))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	after, err := svc.GetSession(ctx, sid)
	require.NoError(t, err)
	for i, q := range after.Questions {
		assert.Equal(t, fmt.Sprintf("a%d", i), q.UserAnswer)
	}
	assert.Len(t, repo.answerList(sid), n)
}

// memRepository 内存实现，用来模拟进程重启之后从数据库恢复
type memRepository struct {
	mu       sync.Mutex
	sessions []domain.Session
	answers  map[string]map[int]domain.Answer
	reports  map[string]domain.Report
}

func newMemRepository() *memRepository {
	return &memRepository{
		answers: make(map[string]map[int]domain.Answer),
		reports: make(map[string]domain.Report),
	}
}

func (r *memRepository) session(sid string) domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.find(sid)
	if idx < 0 {
		return domain.Session{}
	}
	return r.sessions[idx].Clone()
}

func (r *memRepository) answerList(sid string) []domain.Answer {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]domain.Answer, 0, len(r.answers[sid]))
	for _, ans := range r.answers[sid] {
		res = append(res, ans)
	}
	slices.SortFunc(res, func(a, b domain.Answer) int {
		return a.QuestionIndex - b.QuestionIndex
	})
	return res
}

func (r *memRepository) find(sid string) int {
	return slices.IndexFunc(r.sessions, func(s domain.Session) bool {
		return s.SessionID == sid
	})
}

func (r *memRepository) SaveSession(ctx context.Context, sess domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, sess.Clone())
	return nil
}

func (r *memRepository) FindUnfinishedSession(ctx context.Context, resumeID int64) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.sessions) - 1; i >= 0; i-- {
		s := r.sessions[i]
		if s.ResumeID == resumeID && s.Status.IsUnfinished() {
			return s.Clone(), nil
		}
	}
	return domain.Session{}, repository.ErrSessionNotFound
}

func (r *memRepository) FindBySessionID(ctx context.Context, sid string) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.find(sid)
	if idx < 0 {
		return domain.Session{}, repository.ErrSessionNotFound
	}
	return r.sessions[idx].Clone(), nil
}

func (r *memRepository) SaveAnswer(ctx context.Context, sid string, ans domain.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.answers[sid] == nil {
		r.answers[sid] = make(map[int]domain.Answer)
	}
	r.answers[sid][ans.QuestionIndex] = ans
	return nil
}

func (r *memRepository) UpdateCurrentQuestionIndex(ctx context.Context, sid string, idx int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.find(sid); i >= 0 {
		r.sessions[i].CurrentIndex = idx
	}
	return nil
}

func (r *memRepository) UpdateSessionStatus(ctx context.Context, sid string, status domain.SessionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.find(sid); i >= 0 {
		r.sessions[i].Status = status
	}
	return nil
}

func (r *memRepository) FindAnswersBySessionID(ctx context.Context, sid string) ([]domain.Answer, error) {
	return r.answerList(sid), nil
}

func (r *memRepository) SaveReport(ctx context.Context, sid string, report domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[sid] = report
	if i := r.find(sid); i >= 0 {
		r.sessions[i].Status = domain.StatusEvaluated
	}
	return nil
}

func (r *memRepository) FindReport(ctx context.Context, sid string) (domain.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[sid]
	if !ok {
		return domain.Report{}, repository.ErrReportNotFound
	}
	return report, nil
}
