package pulse

import (
	_ "embed"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/cube/orion"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed composite.wgsl
var compositeShaderSource string

// bind groups depend on the pipeline layout, which depends on the format
type compositeBinding struct {
	Image  uint64
	Format wgpu.TextureFormat
}

type compositeConfig struct {
	Format wgpu.TextureFormat
}

func (c compositeConfig) Specialize(dev *wgpu.Device) *wgpu.RenderPipeline {
	shader := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "CompositeShader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: compositeShaderSource},
	})

	defer shader.Release()

	return dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "CompositePipeline",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vertex",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fragment",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    c.Format,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
			CullMode: wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xffffffff,
		},
	})
}

// PlaceOverFrame draws the intermediate image over the whole frame.
type PlaceOverFrame struct {
	ctx *Context

	// format of the frames
	format wgpu.TextureFormat

	pipelines *PipelineCache[compositeConfig, *wgpu.RenderPipeline]
	sampler   *wgpu.Sampler

	bindGroups *lru.Cache[compositeBinding, *wgpu.BindGroup]
}

var _ orion.CompositeStage = (*PlaceOverFrame)(nil)

func NewPlaceOverFrame(ctx *Context, format wgpu.TextureFormat) *PlaceOverFrame {
	bindGroups, _ := lru.NewWithEvict[compositeBinding, *wgpu.BindGroup](bindGroupCacheSize, releaseBindGroupOnEviction[compositeBinding])

	return &PlaceOverFrame{
		ctx:        ctx,
		format:     format,
		pipelines:  NewPipelineCache[compositeConfig, *wgpu.RenderPipeline](ctx),
		sampler:    LinearSampler(ctx.Device, "Composite"),
		bindGroups: bindGroups,
	}
}

func (p *PlaceOverFrame) RenderOver(frame orion.Frame, image orion.Image) (orion.Submission, error) {
	surfaceFrame, ok := frame.(*SurfaceFrame)
	if !ok {
		return 0, fmt.Errorf("render over foreign frame %T", frame)
	}

	texture, ok := image.(*Texture)
	if !ok {
		return 0, fmt.Errorf("render foreign image %T", image)
	}

	format := surfaceFrame.Format()
	if format == wgpu.TextureFormatUndefined {
		format = p.format
	}

	pipeline := p.pipelines.Get(compositeConfig{Format: format})

	bindGroup, err := p.bindGroup(pipeline, compositeBinding{Image: texture.ID(), Format: format}, texture)
	if err != nil {
		return 0, err
	}

	enc, err := NewCommandEncoder(p.ctx, "Composite")
	if err != nil {
		return 0, err
	}

	desc := wgpu.RenderPassDescriptor{
		Label: "Composite",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       surfaceFrame.View(),
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{A: 1},
			},
		},
	}

	err = enc.AddRenderPass(desc, func(pass *wgpu.RenderPassEncoder) {
		pass.SetPipeline(pipeline.Pipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		pass.Draw(3, 1, 0, 0)
	})

	if err != nil {
		enc.Release()
		return 0, err
	}

	return enc.Submit()
}

func (p *PlaceOverFrame) bindGroup(pipeline *CachedPipeline[*wgpu.RenderPipeline], key compositeBinding, texture *Texture) (*wgpu.BindGroup, error) {
	if cached, ok := p.bindGroups.Get(key); ok {
		return cached, nil
	}

	bindGroup, err := p.ctx.TryCreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Composite",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: texture.View(),
			},
			{
				Binding: 1,
				Sampler: p.sampler,
			},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("create composite bind group: %w", err)
	}

	p.bindGroups.Add(key, bindGroup)

	return bindGroup, nil
}

func (p *PlaceOverFrame) Release() {
	p.bindGroups.Purge()
	p.pipelines.Purge()
}
