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
	"fixgen/fixerr"
	"fixgen/model"
)

var headerPrefix = []model.Tag{
	{Name: "BeginString", Value: 8, Kind: model.KindRegular, DataType: "STRING"},
	{Name: "BodyLength", Value: 9, Kind: model.KindRegular, DataType: "LENGTH"},
	{Name: "MsgType", Value: 35, Kind: model.KindRegular, DataType: "STRING"},
}

var trailerSuffix = model.Tag{Name: "CheckSum", Value: 10, Kind: model.KindRegular, DataType: "STRING"}

// ValidateHeader checks that expanded's leading entries exactly match
// BeginString, BodyLength, MsgType (by name and by Regular tag record
// equality), then strips them: they're handled by the runtime framing
// layer, not the generated descriptor tables.
func ValidateHeader(expanded model.Block) (model.Block, error) {
	if len(expanded) < len(headerPrefix) {
		return nil, fixerr.HeaderTooShortErr()
	}
	for i, want := range headerPrefix {
		got := expanded[i]
		if got.Kind != model.EntryRegular || got.Name != want.Name || got.Tag.Value != want.Value || got.Tag.DataType != want.DataType {
			return nil, fixerr.InvalidHeaderErr(i, got.Name, want.Name)
		}
	}
	return expanded[len(headerPrefix):], nil
}

// ValidateTrailer checks that expanded is non-empty and ends with
// CheckSum, then strips it. Other trailer entries are retained.
func ValidateTrailer(expanded model.Block) (model.Block, error) {
	if len(expanded) == 0 {
		return nil, fixerr.InvalidTrailerErr("trailer is empty")
	}
	last := expanded[len(expanded)-1]
	if last.Kind != model.EntryRegular || last.Name != trailerSuffix.Name || last.Tag.Value != trailerSuffix.Value {
		return nil, fixerr.InvalidTrailerErr("trailer does not end with CheckSum")
	}
	return expanded[:len(expanded)-1], nil
}
