// Copyright 2010-2024 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scip

import (
	"errors"
	"fmt"
	"testing"
)

func TestRetcodeFromInt(t *testing.T) {
	testCases := []struct {
		code int
		want Retcode
		name string
	}{
		{1, RetcodeOkay, "OKAY"},
		{0, RetcodeError, "ERROR"},
		{-6, RetcodeLPError, "LPERROR"},
		{-8, RetcodeInvalidCall, "INVALIDCALL"},
		{-12, RetcodeParameterUnknown, "PARAMETERUNKNOWN"},
		{-18, RetcodeNotImplemented, "NOTIMPLEMENTED"},
		{-19, RetcodeUnknown, "UNKNOWN"},
		{7, RetcodeUnknown, "UNKNOWN"},
	}
	for _, test := range testCases {
		got := RetcodeFromInt(test.code)
		if got != test.want {
			t.Errorf("RetcodeFromInt(%d) = %v, want %v", test.code, got, test.want)
		}
		if got.String() != test.name {
			t.Errorf("RetcodeFromInt(%d).String() = %q, want %q", test.code, got.String(), test.name)
		}
	}
}

func TestRetcode_Error(t *testing.T) {
	if err := RetcodeOkay.asError(); err != nil {
		t.Errorf("RetcodeOkay.asError() = %v, want nil", err)
	}
	err := fmt.Errorf("reading problem: %w", RetcodeReadError.asError())
	if !errors.Is(err, RetcodeReadError) {
		t.Errorf("errors.Is(%v, RetcodeReadError) = false", err)
	}
	if errors.Is(err, RetcodeNoFile) {
		t.Errorf("errors.Is(%v, RetcodeNoFile) = true", err)
	}
	var rc Retcode
	if !errors.As(err, &rc) || rc != RetcodeReadError {
		t.Errorf("errors.As(%v) = %v, want %v", err, rc, RetcodeReadError)
	}
	if got, want := RetcodeBranchError.Error(), "scip: BRANCHERROR"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := Retcode(-500).String(), "Retcode(-500)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
