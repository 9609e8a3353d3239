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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/pkg/errors"
)

var ErrReportNotFound = errors.New("面试报告没找到")

const reportExpiration = 24 * time.Hour

// ReportCache 生成好的面试报告，多实例共享
type ReportCache interface {
	SetReport(ctx context.Context, report domain.Report) error
	GetReport(ctx context.Context, sid string) (domain.Report, error)
}

type ReportECache struct {
	ec ecache.Cache
}

func NewReportECache(ec ecache.Cache) ReportCache {
	return &ReportECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "interview:",
		},
	}
}

func (c *ReportECache) SetReport(ctx context.Context, report domain.Report) error {
	val, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "序列化面试报告失败")
	}
	return c.ec.Set(ctx, c.reportKey(report.SessionID), string(val), reportExpiration)
}

func (c *ReportECache) GetReport(ctx context.Context, sid string) (domain.Report, error) {
	val := c.ec.Get(ctx, c.reportKey(sid))
	if val.KeyNotFound() {
		return domain.Report{}, ErrReportNotFound
	}
	if val.Err != nil {
		return domain.Report{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.Report{}, err
	}
	var res domain.Report
	err = json.Unmarshal([]byte(str), &res)
	return res, errors.Wrap(err, "反序列化面试报告失败")
}

func (c *ReportECache) reportKey(sid string) string {
	return fmt.Sprintf("report:%s", sid)
}
