package pulse

import (
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// UniformBuffer holds a single value of T in a gpu uniform buffer. T must
// follow the std140 layout rules of WGSL.
type UniformBuffer[T any] struct {
	ctx    *Context
	buffer *wgpu.Buffer
}

func NewUniformBuffer[T any](ctx *Context, label string) *UniformBuffer[T] {
	buffer := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(sizeOf[T]()),
	})

	return &UniformBuffer[T]{ctx: ctx, buffer: buffer}
}

// Write queues an upload of value. It becomes visible to all work that is
// submitted afterwards.
func (u *UniformBuffer[T]) Write(value T) {
	u.ctx.WriteBuffer(u.buffer, 0, asByteSlice(&value))
}

func (u *UniformBuffer[T]) Buffer() *wgpu.Buffer {
	return u.buffer
}

func (u *UniformBuffer[T]) Release() {
	if u.buffer != nil {
		u.buffer.Release()
		u.buffer = nil
	}
}

func sizeOf[T any]() uintptr {
	var zeroT T
	return unsafe.Sizeof(zeroT)
}

func asByteSlice[T any](value *T) []byte {
	ptr := (*byte)(unsafe.Pointer(value))
	return unsafe.Slice(ptr, sizeOf[T]())
}
