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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound   = gorm.ErrRecordNotFound
	ErrDuplicateSession = errors.New("面试会话ID冲突")
)

// InterviewSession 一场模拟面试的元数据，题目以 JSON 快照的形式保存
type InterviewSession struct {
	ID                   int64                       `gorm:"primaryKey,autoIncrement"`
	SessionID            string                      `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uniq_session_id;comment:'会话ID'"`
	ResumeID             int64                       `gorm:"type:BIGINT;NOT NULL;index:idx_resume_id_status,priority:1;comment:'关联的简历ID'"`
	ResumeText           string                      `gorm:"type:TEXT;comment:'创建会话时的简历快照'"`
	TotalQuestions       int                         `gorm:"type:INT;NOT NULL;comment:'题目数量'"`
	CurrentQuestionIndex int                         `gorm:"type:INT;NOT NULL;default:0;comment:'已经提交的题目数量'"`
	Status               string                      `gorm:"type:VARCHAR(32);NOT NULL;index:idx_resume_id_status,priority:2;comment:'CREATED/IN_PROGRESS/COMPLETED/EVALUATED'"`
	Questions            sqlx.JsonColumn[[]Question] `gorm:"type:json;comment:'题目快照'"`
	OverallScore         int                         `gorm:"type:INT;NOT NULL;default:0;comment:'总分'"`
	Report               sql.NullString              `gorm:"type:MEDIUMTEXT;comment:'最近一次生成的报告JSON'"`
	Ctime                int64                       `gorm:"index:idx_ctime"`
	Utime                int64
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

// Question 只保存题目本身，作答记录在 interview_answers 里
type Question struct {
	Index           int      `json:"index"`
	Category        string   `json:"category"`
	Question        string   `json:"question"`
	ReferenceAnswer string   `json:"referenceAnswer"`
	KeyPoints       []string `json:"keyPoints"`
}

// InterviewAnswer 同一道题只有一行，重复保存会覆盖
type InterviewAnswer struct {
	ID            int64  `gorm:"primaryKey,autoIncrement"`
	SessionID     string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uniq_session_question,priority:1"`
	QuestionIndex int    `gorm:"type:INT;NOT NULL;uniqueIndex:uniq_session_question,priority:2"`
	Question      string `gorm:"type:TEXT"`
	Category      string `gorm:"type:VARCHAR(128)"`
	UserAnswer    string `gorm:"type:TEXT"`
	Score         int    `gorm:"type:INT;NOT NULL;default:0"`
	Feedback      string `gorm:"type:TEXT"`
	Ctime         int64
	Utime         int64
}

func (InterviewAnswer) TableName() string {
	return "interview_answers"
}

type SessionDAO interface {
	Insert(ctx context.Context, sess InterviewSession) (int64, error)
	// FindLatestByResumeID 按照创建时间倒序，找到第一条状态在 statuses 里的记录
	FindLatestByResumeID(ctx context.Context, resumeID int64, statuses []string) (InterviewSession, error)
	FindBySessionID(ctx context.Context, sid string) (InterviewSession, error)
	UpdateCurrentQuestionIndex(ctx context.Context, sid string, idx int) error
	UpdateStatus(ctx context.Context, sid string, status string) error

	UpsertAnswer(ctx context.Context, ans InterviewAnswer) error
	FindAnswersBySessionID(ctx context.Context, sid string) ([]InterviewAnswer, error)

	// SaveReport 在同一个事务里回写报告、总分、状态和每道题的评分
	SaveReport(ctx context.Context, sess InterviewSession, answers []InterviewAnswer) error
}

type GORMSessionDAO struct {
	db *egorm.Component
}

func NewGORMSessionDAO(db *egorm.Component) SessionDAO {
	return &GORMSessionDAO{db: db}
}

func (g *GORMSessionDAO) Insert(ctx context.Context, sess InterviewSession) (int64, error) {
	// 沿用内存里的创建时间，恢复之后的会话和恢复之前一致
	if sess.Ctime == 0 {
		now := time.Now().UnixMilli()
		sess.Ctime, sess.Utime = now, now
	}
	err := g.db.WithContext(ctx).Create(&sess).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateSession
		}
	}
	return sess.ID, err
}

func (g *GORMSessionDAO) FindLatestByResumeID(ctx context.Context, resumeID int64, statuses []string) (InterviewSession, error) {
	var res InterviewSession
	err := g.db.WithContext(ctx).
		Where("resume_id = ? AND status IN ?", resumeID, statuses).
		Order("ctime DESC, id DESC").
		First(&res).Error
	return res, err
}

func (g *GORMSessionDAO) FindBySessionID(ctx context.Context, sid string) (InterviewSession, error) {
	var res InterviewSession
	err := g.db.WithContext(ctx).Where("session_id = ?", sid).First(&res).Error
	return res, err
}

func (g *GORMSessionDAO) UpdateCurrentQuestionIndex(ctx context.Context, sid string, idx int) error {
	return g.db.WithContext(ctx).Model(&InterviewSession{}).
		Where("session_id = ?", sid).
		Updates(map[string]any{
			"current_question_index": idx,
			"utime":                  time.Now().UnixMilli(),
		}).Error
}

func (g *GORMSessionDAO) UpdateStatus(ctx context.Context, sid string, status string) error {
	return g.db.WithContext(ctx).Model(&InterviewSession{}).
		Where("session_id = ?", sid).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *GORMSessionDAO) UpsertAnswer(ctx context.Context, ans InterviewAnswer) error {
	now := time.Now().UnixMilli()
	ans.Ctime, ans.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "question_index"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"question",
			"category",
			"user_answer",
			"score",
			"feedback",
			"utime",
		}),
	}).Create(&ans).Error
}

func (g *GORMSessionDAO) FindAnswersBySessionID(ctx context.Context, sid string) ([]InterviewAnswer, error) {
	var res []InterviewAnswer
	err := g.db.WithContext(ctx).
		Where("session_id = ?", sid).
		Order("question_index ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMSessionDAO) SaveReport(ctx context.Context, sess InterviewSession, answers []InterviewAnswer) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&InterviewSession{}).
			Where("session_id = ?", sess.SessionID).
			Updates(map[string]any{
				"report":        sess.Report,
				"overall_score": sess.OverallScore,
				"status":        sess.Status,
				"utime":         now,
			}).Error
		if err != nil {
			return err
		}
		// 没有作答的题目没有对应的行，这里只更新已有的记录
		for _, ans := range answers {
			err = tx.Model(&InterviewAnswer{}).
				Where("session_id = ? AND question_index = ?", sess.SessionID, ans.QuestionIndex).
				Updates(map[string]any{
					"score":    ans.Score,
					"feedback": ans.Feedback,
					"utime":    now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
