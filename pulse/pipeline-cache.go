package pulse

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Pipeline is implemented by wgpu.RenderPipeline and wgpu.ComputePipeline.
type Pipeline interface {
	GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout
	Release()
}

type CachedPipeline[P Pipeline] struct {
	Pipeline P
	layouts  *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

// GetBindGroupLayout returns the cached layout of the bind group at idx.
// The layout is owned by the cache, do not release it.
func (pc *CachedPipeline[P]) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	layout, ok := pc.layouts.Get(idx)
	if ok {
		return layout
	}

	layout = pc.Pipeline.GetBindGroupLayout(idx)
	pc.layouts.Add(idx, layout)

	return layout
}

type PipelineConfig[P Pipeline] interface {
	comparable

	// Specialize creates a specialized pipeline for the
	// current PipelineConfig
	Specialize(dev *wgpu.Device) P
}

// PipelineCache builds pipelines on demand, one for each distinct config.
type PipelineCache[C PipelineConfig[P], P Pipeline] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, *CachedPipeline[P]]
}

func NewPipelineCache[C PipelineConfig[P], P Pipeline](ctx *Context) *PipelineCache[C, P] {
	cache, _ := lru.NewWithEvict[C, *CachedPipeline[P]](16, releasePipelineOnEviction[C, P])

	return &PipelineCache[C, P]{
		device: ctx.Device,
		cache:  cache,
	}
}

func (p *PipelineCache[C, P]) Get(conf C) *CachedPipeline[P] {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached
	}

	slog.Debug("Specialize pipeline", slog.Any("config", conf))

	layouts, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](4, releaseBindGroupLayoutOnEviction)

	pc := &CachedPipeline[P]{Pipeline: conf.Specialize(p.device), layouts: layouts}
	p.cache.Add(conf, pc)

	return pc
}

// Purge releases all cached pipelines.
func (p *PipelineCache[C, P]) Purge() {
	p.cache.Purge()
}

func releasePipelineOnEviction[C any, P Pipeline](_config C, pipe *CachedPipeline[P]) {
	pipe.layouts.Purge()
	pipe.Pipeline.Release()
}

func releaseBindGroupLayoutOnEviction(_ uint32, layout *wgpu.BindGroupLayout) {
	layout.Release()
}
