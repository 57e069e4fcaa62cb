package ir

// Operators internal to the lazy backend, with no counterpart in the user
// facing op set. Declaring these performs no registry lookups; each handle
// resolves its kind on first use.
var (
	AllToAll               = NewLazyOpKind("ltc::all_to_all")
	AsStridedViewUpdate    = NewLazyOpKind("ltc::as_strided_view_update")
	Cast                   = NewLazyOpKind("ltc::cast")
	CollectivePermute      = NewLazyOpKind("ltc::collective_permute")
	CrossReplicaSum        = NewLazyOpKind("ltc::cross_replica_sum")
	DeviceData             = NewLazyOpKind("ltc::device_data")
	DiagonalViewUpdate     = NewLazyOpKind("ltc::diagonal_view_update")
	GenericSlice           = NewLazyOpKind("ltc::generic_slice")
	GetDimensionsSize      = NewLazyOpKind("ltc::get_dimensions_size")
	MovingAverage          = NewLazyOpKind("ltc::moving_average")
	NMS                    = NewLazyOpKind("ltc::nms")
	NotSupported           = NewLazyOpKind("ltc::not_supported")
	ReplicationPad         = NewLazyOpKind("ltc::replication_pad")
	ReplicationPadBackward = NewLazyOpKind("ltc::replication_pad_backward")
	Select                 = NewLazyOpKind("ltc::select")
	TensorData             = NewLazyOpKind("ltc::tensor_data")
	Unselect               = NewLazyOpKind("ltc::unselect")
	UpdateSlice            = NewLazyOpKind("ltc::update_slice")
)

// Builtins returns the backend-internal operator handles, in declaration
// order. Useful for diagnostics and tests; the slice is freshly allocated.
func Builtins() []*LazyOpKind {
	return []*LazyOpKind{
		AllToAll,
		AsStridedViewUpdate,
		Cast,
		CollectivePermute,
		CrossReplicaSum,
		DeviceData,
		DiagonalViewUpdate,
		GenericSlice,
		GetDimensionsSize,
		MovingAverage,
		NMS,
		NotSupported,
		ReplicationPad,
		ReplicationPadBackward,
		Select,
		TensorData,
		Unselect,
		UpdateSlice,
	}
}
