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

import "fmt"

// Retcode is the unified error code returned by every operation that can fail
// independently of plugin logic. Its values are the native SCIP_RETCODE
// integers.
type Retcode int

// The native return codes. RetcodeOkay is never returned as an error.
const (
	RetcodeOkay               Retcode = 1
	RetcodeError              Retcode = 0
	RetcodeNoMemory           Retcode = -1
	RetcodeReadError          Retcode = -2
	RetcodeWriteError         Retcode = -3
	RetcodeNoFile             Retcode = -4
	RetcodeFileCreateError    Retcode = -5
	RetcodeLPError            Retcode = -6
	RetcodeNoProblem          Retcode = -7
	RetcodeInvalidCall        Retcode = -8
	RetcodeInvalidData        Retcode = -9
	RetcodeInvalidResult      Retcode = -10
	RetcodePluginNotFound     Retcode = -11
	RetcodeParameterUnknown   Retcode = -12
	RetcodeParameterWrongType Retcode = -13
	RetcodeParameterWrongVal  Retcode = -14
	RetcodeKeyAlreadyExisting Retcode = -15
	RetcodeMaxDepthLevel      Retcode = -16
	RetcodeBranchError        Retcode = -17
	RetcodeNotImplemented     Retcode = -18

	// RetcodeUnknown stands for any code this package does not recognize.
	RetcodeUnknown Retcode = -1000
)

var retcodeNames = map[Retcode]string{
	RetcodeOkay:               "OKAY",
	RetcodeError:              "ERROR",
	RetcodeNoMemory:           "NOMEMORY",
	RetcodeReadError:          "READERROR",
	RetcodeWriteError:         "WRITEERROR",
	RetcodeNoFile:             "NOFILE",
	RetcodeFileCreateError:    "FILECREATEERROR",
	RetcodeLPError:            "LPERROR",
	RetcodeNoProblem:          "NOPROBLEM",
	RetcodeInvalidCall:        "INVALIDCALL",
	RetcodeInvalidData:        "INVALIDDATA",
	RetcodeInvalidResult:      "INVALIDRESULT",
	RetcodePluginNotFound:     "PLUGINNOTFOUND",
	RetcodeParameterUnknown:   "PARAMETERUNKNOWN",
	RetcodeParameterWrongType: "PARAMETERWRONGTYPE",
	RetcodeParameterWrongVal:  "PARAMETERWRONGVAL",
	RetcodeKeyAlreadyExisting: "KEYALREADYEXISTING",
	RetcodeMaxDepthLevel:      "MAXDEPTHLEVEL",
	RetcodeBranchError:        "BRANCHERROR",
	RetcodeNotImplemented:     "NOTIMPLEMENTED",
	RetcodeUnknown:            "UNKNOWN",
}

// RetcodeFromInt maps a native return code to a Retcode. Codes outside the
// known set map to RetcodeUnknown.
func RetcodeFromInt(code int) Retcode {
	rc := Retcode(code)
	if _, ok := retcodeNames[rc]; !ok {
		return RetcodeUnknown
	}
	return rc
}

func (rc Retcode) String() string {
	if name, ok := retcodeNames[rc]; ok {
		return name
	}
	return fmt.Sprintf("Retcode(%d)", int(rc))
}

func (rc Retcode) Error() string {
	return "scip: " + rc.String()
}

// asError returns nil for RetcodeOkay and rc otherwise.
func (rc Retcode) asError() error {
	if rc == RetcodeOkay {
		return nil
	}
	return rc
}
