// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"strconv"

	"code.hybscloud.com/atomix"
)

// Serial identifies one run of a task started with [Task.Start].
// Serials increase monotonically across the process; the first is 1.
// The zero Serial never identifies a run.
type Serial uint32

// String formats s as "run#N".
func (s Serial) String() string {
	return "run#" + strconv.FormatUint(uint64(s), 10)
}

// runs counts started task runs.
var runs atomix.Uint32

func nextSerial() Serial {
	return Serial(runs.Add(1))
}
