// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hazard implements a minimal hazard-pointer registry: a growable
// set of publish slots per reclamation domain, and a scan primitive that
// tells a retire list whether an address is still protected.
//
// The registry is type-erased (it deals only in uintptr addresses); the
// typed protect/retire discipline lives in the relaxq package, which is
// the only place that knows about node layouts.
package hazard
