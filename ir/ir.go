// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ir provides the public API for operator-kind tags in the lazy
// execution backend.
//
// The package defines:
//   - OpKind: comparable tag identifying which computation an IR node performs
//   - LazyOpKind: handle that resolves its kind from the registry on first use
//   - Package-level handles for the backend-internal operators
//
// Example:
//
//	kind := ir.Select.Kind()
//	if node.Kind() == kind {
//	    // rewrite the select node
//	}
package ir

import (
	"github.com/born-ml/lazy/internal/ir"
)

// Type aliases for public API

// OpKind identifies which computation an IR node performs. Values are
// comparable; equal names yield equal kinds.
type OpKind = ir.OpKind

// LazyOpKind resolves an operator kind from the registry on first use,
// exactly once across concurrent callers.
type LazyOpKind = ir.LazyOpKind

// ErrMalformedName reports an operator name the registry refuses to intern.
var ErrMalformedName = ir.ErrMalformedName

// GetOpKind returns the kind registered under name, interning it on first
// use. Repeated calls with the same name return equal values.
func GetOpKind(name string) (OpKind, error) {
	return ir.GetOpKind(name)
}

// MustGetOpKind is like GetOpKind but panics on a malformed name.
func MustGetOpKind(name string) OpKind {
	return ir.MustGetOpKind(name)
}

// NewLazyOpKind returns a handle for name. No registry lookup happens until
// the handle is first resolved.
func NewLazyOpKind(name string) *LazyOpKind {
	return ir.NewLazyOpKind(name)
}

// Builtins returns the backend-internal operator handles in declaration order.
func Builtins() []*LazyOpKind {
	return ir.Builtins()
}

// Backend-internal operators, resolved on first use.
var (
	AllToAll               = ir.AllToAll
	AsStridedViewUpdate    = ir.AsStridedViewUpdate
	Cast                   = ir.Cast
	CollectivePermute      = ir.CollectivePermute
	CrossReplicaSum        = ir.CrossReplicaSum
	DeviceData             = ir.DeviceData
	DiagonalViewUpdate     = ir.DiagonalViewUpdate
	GenericSlice           = ir.GenericSlice
	GetDimensionsSize      = ir.GetDimensionsSize
	MovingAverage          = ir.MovingAverage
	NMS                    = ir.NMS
	NotSupported           = ir.NotSupported
	ReplicationPad         = ir.ReplicationPad
	ReplicationPadBackward = ir.ReplicationPadBackward
	Select                 = ir.Select
	TensorData             = ir.TensorData
	Unselect               = ir.Unselect
	UpdateSlice            = ir.UpdateSlice
)
