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

// Package fixsample cross-checks a compiled dictionary against a real
// FIX engine: it populates one synthetic wire message per declared
// message using quickfix's own field-setting API, proving that every
// reachable tag and every Data/Group pairing resolves the way a second,
// independent implementation expects. It never parses a wire message
// and never feeds back into the compiler; it is a development aid, not
// a generation step.
package fixsample

import (
	"fmt"

	"github.com/quickfixgo/quickfix"

	"fixgen/model"
)

// placeholder returns a type-appropriate stand-in value for a tag's
// declared dataType, mirroring the placeholder conventions of a manual
// FIX test harness: numeric-looking types get a digit, BOOLEAN gets
// "Y", UTCTIMESTAMP gets a fixed timestamp, and everything else gets a
// short alphabetic tag.
func placeholder(tag model.Tag) string {
	switch tag.DataType {
	case "INT", "LENGTH", "NUMINGROUP", "SEQNUM", "QTY", "PRICE", "AMT":
		return "1"
	case "BOOLEAN":
		return "Y"
	case "UTCTIMESTAMP":
		return "20260101-00:00:00.000"
	default:
		return "SAMPLE"
	}
}

// FieldSetter abstracts setting fields on FIX message components,
// matched against a message Header, Body, or repeating-group instance.
type FieldSetter interface {
	SetField(tag quickfix.Tag, field quickfix.FieldValueWriter) *quickfix.FieldMap
}

func setString(fs FieldSetter, tag quickfix.Tag, value string) {
	fs.SetField(tag, quickfix.FIXString(value))
}

// Build constructs one quickfix.Message per entry in msgs, using
// common to populate the shared prefix every message carries.
func Build(common model.Block, msgs []model.Message) map[string]*quickfix.Message {
	out := make(map[string]*quickfix.Message, len(msgs))
	for _, m := range msgs {
		msg := quickfix.NewMessage()
		setString(&msg.Header, quickfix.Tag(35), m.MsgType)
		populate(&msg.Body, common)
		populate(&msg.Body, m.Block)
		out[m.Name] = msg
	}
	return out
}

func populate(body *quickfix.Body, b model.Block) {
	for _, e := range b {
		switch e.Kind {
		case model.EntryData:
			setString(body, quickfix.Tag(e.Tag.Value), placeholder(e.Tag))
			setString(body, quickfix.Tag(e.Tag.LengthTagValue), fmt.Sprintf("%d", len(placeholder(e.Tag))))

		case model.EntryGroup:
			group := quickfix.NewRepeatingGroup(
				quickfix.Tag(e.SizeTag.Value),
				groupTemplate(e.Body),
			)
			populateFields(group.Add(), e.Body)
			body.SetGroup(group)

		default:
			setString(body, quickfix.Tag(e.Tag.Value), placeholder(e.Tag))
		}
	}
}

// populateFields sets every non-group field of b on fs, used for a
// group instance's own FieldMap. Nested groups within a group are
// skipped: one representative instance is enough to prove the size
// tag and field set resolve, without recursing into arbitrarily deep
// nested repeating structures.
func populateFields(fs FieldSetter, b model.Block) {
	for _, e := range b {
		if e.Kind == model.EntryGroup {
			continue
		}
		setString(fs, quickfix.Tag(e.Tag.Value), placeholder(e.Tag))
		if e.Kind == model.EntryData {
			setString(fs, quickfix.Tag(e.Tag.LengthTagValue), fmt.Sprintf("%d", len(placeholder(e.Tag))))
		}
	}
}

func groupTemplate(b model.Block) quickfix.GroupTemplate {
	var tmpl quickfix.GroupTemplate
	for _, e := range b {
		if e.Kind == model.EntryGroup {
			continue
		}
		tmpl = append(tmpl, quickfix.GroupElement(quickfix.Tag(e.Tag.Value)))
	}
	return tmpl
}
