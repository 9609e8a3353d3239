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

package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/interview-guide/internal/interview/internal/domain"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatedEventProducer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, InterviewEvaluatedTopic, 1))
	consumer, err := q.Consumer(InterviewEvaluatedTopic, "test")
	require.NoError(t, err)
	producer, err := NewEvaluatedEventProducer(q)
	require.NoError(t, err)

	sess := domain.Session{
		SessionID: "sid",
		ResumeID:  12,
		Questions: make([]domain.Question, 3),
		Utime:     123,
	}
	err = producer.Produce(ctx, NewInterviewEvaluatedEvent(sess, domain.Report{OverallScore: 66}))
	require.NoError(t, err)

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var evt InterviewEvaluatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, InterviewEvaluatedEvent{
		SessionID:      "sid",
		ResumeID:       12,
		OverallScore:   66,
		TotalQuestions: 3,
		Utime:          123,
	}, evt)
}
