package pulse

import (
	"fmt"

	"github.com/oliverbestmann/cube/orion"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// CommandEncoder records passes into one command buffer that is submitted
// to the queue of the Context.
type CommandEncoder struct {
	ctx *Context
	enc *wgpu.CommandEncoder

	label string
}

func NewCommandEncoder(ctx *Context, label string) (*CommandEncoder, error) {
	enc, err := ctx.TryCreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("create command encoder %q: %w", label, err)
	}

	return &CommandEncoder{ctx: ctx, enc: enc, label: label}, nil
}

func (e *CommandEncoder) AddComputePass(label string, configure func(pass *wgpu.ComputePassEncoder)) error {
	pass := e.enc.BeginComputePass(&wgpu.ComputePassDescriptor{Label: label})
	defer pass.Release()

	configure(pass)

	if err := pass.TryEnd(); err != nil {
		return fmt.Errorf("end compute pass %q: %w", label, err)
	}

	return nil
}

func (e *CommandEncoder) AddRenderPass(desc wgpu.RenderPassDescriptor, configure func(pass *wgpu.RenderPassEncoder)) error {
	pass := e.enc.BeginRenderPass(&desc)
	defer pass.Release()

	configure(pass)

	if err := pass.TryEnd(); err != nil {
		return fmt.Errorf("end render pass %q: %w", desc.Label, err)
	}

	return nil
}

// Submit finishes the encoder and submits the command buffer. The
// encoder must not be used afterwards.
func (e *CommandEncoder) Submit() (orion.Submission, error) {
	defer e.Release()

	buf, err := e.enc.TryFinish(&wgpu.CommandBufferDescriptor{Label: e.label})
	if err != nil {
		return 0, fmt.Errorf("finish command encoder %q: %w", e.label, err)
	}

	defer buf.Release()

	e.ctx.Submit(buf)
	e.ctx.submissions += 1

	return orion.Submission(e.ctx.submissions), nil
}

func (e *CommandEncoder) Release() {
	if e.enc != nil {
		e.enc.Release()
		e.enc = nil
	}
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate unless Keep was called. Use it to
// clean up partially constructed resources on error paths.
type ReleaseGuard struct {
	delegates []Releaser
}

func (r *ReleaseGuard) Add(delegate Releaser) {
	r.delegates = append(r.delegates, delegate)
}

func (r *ReleaseGuard) Keep() {
	r.delegates = nil
}

func (r *ReleaseGuard) Release() {
	// release in reverse order of creation
	for idx := len(r.delegates) - 1; idx >= 0; idx-- {
		r.delegates[idx].Release()
	}

	r.delegates = nil
}
