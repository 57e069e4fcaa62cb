// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ir provides operator-kind tags for the lazy execution backend.
//
// # Overview
//
// A lazy backend records operations into an intermediate-representation
// graph instead of executing them immediately. Every node in that graph
// carries an OpKind tag saying which computation it performs; lowering and
// pattern matching dispatch on it. This package owns those tags:
//   - A process-global registry interning one OpKind per qualified name
//   - LazyOpKind handles that defer the registry lookup to first use
//   - The fixed set of backend-internal operator handles
//
// # Basic Usage
//
//	import "github.com/born-ml/lazy/ir"
//
//	func lowerNode(kind ir.OpKind) {
//	    switch kind {
//	    case ir.DeviceData.Kind():
//	        // materialized device buffer, nothing to lower
//	    case ir.Select.Kind():
//	        // narrow along one dimension
//	    }
//	}
//
// # Lazy Resolution
//
// The backend-internal handles (ir.Select, ir.Cast, ...) are package-level
// values, so they are constructed during package initialization — possibly
// before the registry they point into is ready. Each handle therefore
// stores only its name and resolves it on first use. The resolution runs
// exactly once per handle, even when many goroutines race to trigger it,
// and every caller observes the same fully-resolved value.
//
// If a handle's first resolution fails, the handle is poisoned: the error
// is cached and returned to every subsequent caller. The builtin names are
// fixed and validated, so their handles never poison in practice; Kind()
// panics on a poisoned handle, Resolve() returns the error.
//
// # Qualified Names
//
// Operator names follow the "namespace::op" convention, e.g.
// "ltc::device_data" for backend-internal operators. Unqualified names are
// accepted for ad-hoc kinds. Names containing whitespace or NUL are
// rejected with ErrMalformedName.
package ir
