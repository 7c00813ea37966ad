/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fixsample

import (
	"testing"

	"github.com/quickfixgo/quickfix"

	"fixgen/model"
)

func TestBuildPopulatesEveryMessage(t *testing.T) {
	common := model.Block{{Name: "Account", Kind: model.EntryRegular, Tag: model.Tag{Name: "Account", Value: 1}}}
	msgs := []model.Message{
		{Name: "Heartbeat", MsgType: "0", Block: model.Block{
			{Name: "TestReqID", Kind: model.EntryRegular, Tag: model.Tag{Name: "TestReqID", Value: 112}},
		}},
	}

	out := Build(common, msgs)
	msg, ok := out["Heartbeat"]
	if !ok {
		t.Fatal("expected a sample message for Heartbeat")
	}
	if v, err := msg.Body.GetString(quickfix.Tag(1)); err != nil || v == "" {
		t.Errorf("expected Account (tag 1) to be set from the common block, got %q, err %v", v, err)
	}
	if v, err := msg.Body.GetString(quickfix.Tag(112)); err != nil || v == "" {
		t.Errorf("expected TestReqID (tag 112) to be set, got %q, err %v", v, err)
	}
}

func TestBuildDataLengthPairing(t *testing.T) {
	msgs := []model.Message{
		{Name: "NewsMessage", MsgType: "B", Block: model.Block{
			{Name: "RawData", Kind: model.EntryData, Tag: model.Tag{Name: "RawData", Value: 96, Kind: model.KindData, LengthTagValue: 95}},
		}},
	}

	out := Build(nil, msgs)
	msg := out["NewsMessage"]
	if _, err := msg.Body.GetString(quickfix.Tag(96)); err != nil {
		t.Errorf("expected RawData (tag 96) to be set: %v", err)
	}
	if _, err := msg.Body.GetString(quickfix.Tag(95)); err != nil {
		t.Errorf("expected paired length tag 95 to be set: %v", err)
	}
}
