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
	"github.com/ecodeclub/ekit/syncx"
	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
)

// SessionCache 进程内的会话缓存。
// 进程存活期间它就是会话的唯一真相，数据库只是用来重启恢复的影子。
// 没有淘汰策略，多实例部署的时候需要换成别的实现。
type SessionCache interface {
	Get(sid string) (*domain.Session, bool)
	// Put 无条件覆盖
	Put(sess *domain.Session)
	// PutIfAbsent 已经存在的时候返回已有的对象，否则写入 sess 并返回它
	PutIfAbsent(sess *domain.Session) *domain.Session
}

type LocalSessionCache struct {
	sessions syncx.Map[string, *domain.Session]
}

func NewLocalSessionCache() *LocalSessionCache {
	return &LocalSessionCache{}
}

func (c *LocalSessionCache) Get(sid string) (*domain.Session, bool) {
	return c.sessions.Load(sid)
}

func (c *LocalSessionCache) Put(sess *domain.Session) {
	c.sessions.Store(sess.SessionID, sess)
}

func (c *LocalSessionCache) PutIfAbsent(sess *domain.Session) *domain.Session {
	actual, _ := c.sessions.LoadOrStore(sess.SessionID, sess)
	return actual
}
