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

package emit

import (
	"strings"
	"testing"

	"fixgen/model"
)

func regEntry(name string, value int) model.Entry {
	return model.Entry{Name: name, Kind: model.EntryRegular, Tag: model.Tag{Name: name, Value: value}}
}

func TestTagInfoIndexOffset(t *testing.T) {
	b := model.Block{regEntry("Account", 1), regEntry("ClOrdID", 11)}
	out := TagInfo("NewOrderSingle", b, 3)

	if !strings.Contains(out, "REG_TAG_INFO(Account, 3)") {
		t.Errorf("expected Account at offset index 3, got:\n%s", out)
	}
	if !strings.Contains(out, "REG_TAG_INFO(ClOrdID, 4)") {
		t.Errorf("expected ClOrdID at offset index 4, got:\n%s", out)
	}
}

func TestTagInfoDataAndGroupLines(t *testing.T) {
	b := model.Block{
		{Name: "RawData", Kind: model.EntryData, Tag: model.Tag{Name: "RawData", LengthTagValue: 95}},
		{Name: "NoLegs", Kind: model.EntryGroup, SizeTagName: "NoLegs"},
	}
	out := TagInfo("M", b, 0)

	if !strings.Contains(out, "BIN_TAG_INFO(RawData, 95, 0)") {
		t.Errorf("expected BIN_TAG_INFO line, got:\n%s", out)
	}
	if !strings.Contains(out, "GRP_TAG_INFO(NoLegs, 1)") {
		t.Errorf("expected GRP_TAG_INFO line, got:\n%s", out)
	}
}

func TestGroupInfoEmptyUsesParameterizedMacro(t *testing.T) {
	b := model.Block{regEntry("Text", 58)}
	out := GroupInfo("News", b)
	want := "#define News_group_info_func EMPTY_GROUP_INFO(1, Text)\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestGroupInfoNestedListsGroups(t *testing.T) {
	b := model.Block{{Name: "NoLegs", Kind: model.EntryGroup, CanonicalName: "NewOrderSingle_NoLegs"}}
	out := GroupInfo("NewOrderSingle", b)

	if !strings.Contains(out, "&NewOrderSingle_NoLegs_group,") {
		t.Errorf("expected nested group pointer, got:\n%s", out)
	}
	if !strings.Contains(out, "GROUP_INFO_FUNC(NewOrderSingle)") {
		t.Errorf("expected GROUP_INFO_FUNC wrapper, got:\n%s", out)
	}
}

func TestCommonGroupInfoEmptyUsesBareAlias(t *testing.T) {
	out := commonGroupInfo(model.Block{regEntry("SenderCompID", 49)})
	want := "#define common_group_info_func empty_group_info_func\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCommonGroupInfoNestedListsGroups(t *testing.T) {
	b := model.Block{{Name: "NoHops", Kind: model.EntryGroup, CanonicalName: "NoHops"}}
	out := commonGroupInfo(b)

	if !strings.Contains(out, "&NoHops_group,") {
		t.Errorf("expected nested group pointer, got:\n%s", out)
	}
	if !strings.Contains(out, "GROUP_INFO_FUNC(common)") {
		t.Errorf("expected GROUP_INFO_FUNC(common), got:\n%s", out)
	}
}

func TestGroupTableRendersEachGroup(t *testing.T) {
	groups := model.NewOrderedMap[string, model.Group]()
	groups.Set("News_NoLinesOfText", model.Group{
		CanonicalName: "News_NoLinesOfText", SizeTagName: "NoLinesOfText",
		Body: model.Block{regEntry("Text", 58)},
	})

	out := GroupTable(groups)
	if !strings.Contains(out, "News_NoLinesOfText_tag_info") {
		t.Errorf("expected tag_info table for group, got:\n%s", out)
	}
	if !strings.Contains(out, `static const group_info News_NoLinesOfText_group = { "News_NoLinesOfText", News_NoLinesOfText_tag_info, 1, News_NoLinesOfText_group_info_func };`) {
		t.Errorf("expected group_info struct literal, got:\n%s", out)
	}
}

func TestCommonTableRendersTagAndGroupInfo(t *testing.T) {
	common := model.Block{regEntry("SenderCompID", 49)}
	out := CommonTable(common)
	if !strings.Contains(out, "common_tag_info") {
		t.Errorf("expected common_tag_info table, got:\n%s", out)
	}
	if !strings.Contains(out, "empty_group_info_func") {
		t.Errorf("expected empty alias for common with no nested groups, got:\n%s", out)
	}
}

func TestMessageTablesOffsetByCommonLength(t *testing.T) {
	messages := []model.Message{
		{Name: "NewOrderSingle", MsgType: "D", Block: model.Block{regEntry("Account", 1)}},
	}
	out := MessageTables(messages, 2)

	if !strings.Contains(out, "REG_TAG_INFO(Account, 2)") {
		t.Errorf("expected Account offset by common length 2, got:\n%s", out)
	}
	if !strings.Contains(out, `static const message_info NewOrderSingle_message = { "NewOrderSingle", NewOrderSingle_tag_info, 3, NewOrderSingle_group_info_func };`) {
		t.Errorf("expected message_info struct with total length 3, got:\n%s", out)
	}
}
