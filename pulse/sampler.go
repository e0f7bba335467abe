package pulse

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var samplerCache, _ = lru.NewWithEvict[wgpu.SamplerDescriptor, *wgpu.Sampler](16, samplerCacheOnEvict)

func samplerCacheOnEvict(key wgpu.SamplerDescriptor, value *wgpu.Sampler) {
	value.Release()
}

// CachedSampler returns a sampler matching your description. The sampler may be cached,
// you must not call wgpu.Sampler.Release() on it.
func CachedSampler(dev *wgpu.Device, desc wgpu.SamplerDescriptor) *wgpu.Sampler {
	cachedSampler, ok := samplerCache.Get(desc)
	if ok {
		return cachedSampler
	}

	sampler := dev.CreateSampler(&desc)
	samplerCache.Add(desc, sampler)

	return sampler
}

// LinearSampler samples with linear filtering, clamping at the edges.
func LinearSampler(dev *wgpu.Device, label string) *wgpu.Sampler {
	return CachedSampler(dev, wgpu.SamplerDescriptor{
		Label:         label,
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
}

// RepeatSampler samples with linear filtering and wraps around at the edges.
func RepeatSampler(dev *wgpu.Device, label string) *wgpu.Sampler {
	return CachedSampler(dev, wgpu.SamplerDescriptor{
		Label:         label,
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
}
