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

package expand

import (
	"testing"

	"fixgen/fixerr"
	"fixgen/model"
)

func TestValidateHeaderStripsPrefix(t *testing.T) {
	expanded := model.Block{
		{Name: "BeginString", Kind: model.EntryRegular, Tag: model.Tag{Name: "BeginString", Value: 8, DataType: "STRING"}},
		{Name: "BodyLength", Kind: model.EntryRegular, Tag: model.Tag{Name: "BodyLength", Value: 9, DataType: "LENGTH"}},
		{Name: "MsgType", Kind: model.EntryRegular, Tag: model.Tag{Name: "MsgType", Value: 35, DataType: "STRING"}},
		regular("SenderCompID", 49),
	}

	out, err := ValidateHeader(expanded)
	if err != nil {
		t.Fatalf("ValidateHeader: %v", err)
	}
	if len(out) != 1 || out[0].Name != "SenderCompID" {
		t.Errorf("expected only SenderCompID remaining, got %+v", out.Names())
	}
}

func TestValidateHeaderTooShort(t *testing.T) {
	_, err := ValidateHeader(model.Block{regular("BeginString", 8)})
	if err == nil {
		t.Fatal("expected error for header shorter than three entries")
	}
	if fe, ok := err.(*fixerr.Error); !ok || fe.Kind != fixerr.HeaderTooShort {
		t.Errorf("expected HeaderTooShort error, got %v", err)
	}
}

func TestValidateHeaderWrongOrder(t *testing.T) {
	expanded := model.Block{
		{Name: "MsgType", Kind: model.EntryRegular, Tag: model.Tag{Name: "MsgType", Value: 35, DataType: "STRING"}},
		{Name: "BeginString", Kind: model.EntryRegular, Tag: model.Tag{Name: "BeginString", Value: 8, DataType: "STRING"}},
		{Name: "BodyLength", Kind: model.EntryRegular, Tag: model.Tag{Name: "BodyLength", Value: 9, DataType: "LENGTH"}},
	}
	_, err := ValidateHeader(expanded)
	if err == nil {
		t.Fatal("expected error for out-of-order header prefix")
	}
	if fe, ok := err.(*fixerr.Error); !ok || fe.Kind != fixerr.InvalidHeader {
		t.Errorf("expected InvalidHeader error, got %v", err)
	}
}

func TestValidateTrailerStripsCheckSum(t *testing.T) {
	expanded := model.Block{regular("SignatureLength", 93), regular("CheckSum", 10)}
	out, err := ValidateTrailer(expanded)
	if err != nil {
		t.Fatalf("ValidateTrailer: %v", err)
	}
	if len(out) != 1 || out[0].Name != "SignatureLength" {
		t.Errorf("expected CheckSum stripped, got %+v", out.Names())
	}
}

func TestValidateTrailerEmpty(t *testing.T) {
	_, err := ValidateTrailer(model.Block{})
	if err == nil {
		t.Fatal("expected error for empty trailer")
	}
	if fe, ok := err.(*fixerr.Error); !ok || fe.Kind != fixerr.InvalidTrailer {
		t.Errorf("expected InvalidTrailer error, got %v", err)
	}
}

func TestValidateTrailerMissingCheckSum(t *testing.T) {
	expanded := model.Block{regular("SignatureLength", 93)}
	_, err := ValidateTrailer(expanded)
	if err == nil {
		t.Fatal("expected error for trailer not ending in CheckSum")
	}
	if fe, ok := err.(*fixerr.Error); !ok || fe.Kind != fixerr.InvalidTrailer {
		t.Errorf("expected InvalidTrailer error, got %v", err)
	}
}
