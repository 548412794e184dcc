// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package relaxq_test

import "github.com/go-relaxq/relaxq"

var (
	_ relaxq.Handle[int] = (*relaxq.MSHandle[int])(nil)
	_ relaxq.Handle[int] = (*relaxq.DRaHandle[int, *relaxq.MSHandle[int], *relaxq.MSSubQueue[int]])(nil)
	_ relaxq.Handle[int] = (*relaxq.DCBOHandle[int, *relaxq.MSHandle[int], *relaxq.MSSubQueue[int]])(nil)
	_ relaxq.Handle[int] = (*relaxq.RoundRobinHandle[int, *relaxq.MSHandle[int], *relaxq.MSSubQueue[int]])(nil)

	_ relaxq.SubQueue[int, *relaxq.MSHandle[int]]          = (*relaxq.MSSubQueue[int])(nil)
	_ relaxq.SubQueue[int, struct{}]                       = (*relaxq.BoundedSubQueue[int])(nil)
	_ relaxq.CountableSubQueue[int, *relaxq.MSHandle[int]] = (*relaxq.Countable[int, *relaxq.MSHandle[int], *relaxq.MSSubQueue[int]])(nil)
	_ relaxq.VersionedSubQueue[int, *relaxq.MSHandle[int]] = (*relaxq.Versioned[int, *relaxq.MSHandle[int], *relaxq.MSSubQueue[int]])(nil)
)
