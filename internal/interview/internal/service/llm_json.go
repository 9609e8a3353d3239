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
	"encoding/json"
	"fmt"
	"regexp"
)

// 大模型经常会在 JSON 前后加上 ```json 之类的说明
const jsonExpr = `(?s)[\[{].*[\]}]`

var jsonRegexp = regexp.MustCompile(jsonExpr)

func unmarshalAnswer(answer string, val any) error {
	str := jsonRegexp.FindString(answer)
	if str == "" {
		return fmt.Errorf("大模型响应中没有 JSON: %s", answer)
	}
	return json.Unmarshal([]byte(str), val)
}
