// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package relaxq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests that trigger false positives due
// to cross-variable memory ordering (hazard-pointer publish/scan, the
// bounded queue's slot cycle fields).
const RaceEnabled = true
