package pulse

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/cube/orion"
	"github.com/oliverbestmann/cube/procgen"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed cube.wgsl
var cubeShaderSource string

// bind groups of the most recently used intermediate images
const bindGroupCacheSize = 4

type CubeComputeOptions struct {
	// edge length of a square workgroup
	WorkgroupSize uint32

	Noise procgen.NoiseOptions
}

// cameraUniform mirrors the Camera struct in cube.wgsl
type cameraUniform struct {
	Eye     [4]float32
	Forward [4]float32
	Right   [4]float32
	Up      [4]float32
}

type computeConfig struct {
	WorkgroupSize uint32
}

func (c computeConfig) Specialize(dev *wgpu.Device) *wgpu.ComputePipeline {
	source := strings.ReplaceAll(cubeShaderSource, "WORKGROUP_SIZE", strconv.Itoa(int(c.WorkgroupSize)))

	shader := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "CubeShader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: source},
	})

	defer shader.Release()

	return dev.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label: "CubePipeline",
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     shader,
			EntryPoint: "compute",
		},
	})
}

// CubeCompute ray casts a textured cube into the intermediate image.
type CubeCompute struct {
	ctx *Context

	workgroupSize uint32

	pipelines *PipelineCache[computeConfig, *wgpu.ComputePipeline]
	camera    *UniformBuffer[cameraUniform]

	faceTexture *Texture
	faceSampler *wgpu.Sampler

	bindGroups *lru.Cache[uint64, *wgpu.BindGroup]
}

var _ orion.ComputeStage = (*CubeCompute)(nil)

func NewCubeCompute(ctx *Context, opts CubeComputeOptions) (*CubeCompute, error) {
	if opts.WorkgroupSize == 0 {
		opts.WorkgroupSize = 8
	}

	if opts.Noise.Size == 0 {
		opts.Noise = procgen.DefaultNoiseOptions()
	}

	var guard ReleaseGuard
	defer guard.Release()

	pixels, err := procgen.NoiseRGBA(opts.Noise)
	if err != nil {
		return nil, fmt.Errorf("generate face texture: %w", err)
	}

	faceTexture, err := NewTexture(ctx, NewTextureOptions{
		Label:  "CubeFaces",
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  opts.Noise.Size,
		Height: opts.Noise.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("create face texture: %w", err)
	}

	guard.Add(faceTexture)

	if err := faceTexture.WritePixels(ctx, pixels); err != nil {
		return nil, fmt.Errorf("upload face texture: %w", err)
	}

	camera := NewUniformBuffer[cameraUniform](ctx, "Camera")
	guard.Add(camera)

	bindGroups, _ := lru.NewWithEvict[uint64, *wgpu.BindGroup](bindGroupCacheSize, releaseBindGroupOnEviction[uint64])

	compute := &CubeCompute{
		ctx:           ctx,
		workgroupSize: opts.WorkgroupSize,
		pipelines:     NewPipelineCache[computeConfig, *wgpu.ComputePipeline](ctx),
		camera:        camera,
		faceTexture:   faceTexture,
		faceSampler:   RepeatSampler(ctx.Device, "CubeFaces"),
		bindGroups:    bindGroups,
	}

	guard.Keep()

	return compute, nil
}

func (c *CubeCompute) NewImage(width, height uint32) (orion.Image, error) {
	return NewStorageTexture(c.ctx, width, height)
}

func (c *CubeCompute) Compute(target orion.Image, camera orion.CameraState) (orion.Submission, error) {
	texture, ok := target.(*Texture)
	if !ok {
		return 0, fmt.Errorf("compute into foreign image %T", target)
	}

	pipeline := c.pipelines.Get(computeConfig{WorkgroupSize: c.workgroupSize})

	bindGroup, err := c.bindGroup(pipeline, texture)
	if err != nil {
		return 0, err
	}

	c.camera.Write(cameraUniform{
		Eye:     camera.Eye.Padded(camera.Time),
		Forward: camera.Forward.Padded(camera.TanHalfFovY),
		Right:   camera.Right.Padded(camera.Aspect),
		Up:      camera.Up.Padded(0),
	})

	enc, err := NewCommandEncoder(c.ctx, "CubeCompute")
	if err != nil {
		return 0, err
	}

	err = enc.AddComputePass("CubeCompute", func(pass *wgpu.ComputePassEncoder) {
		pass.SetPipeline(pipeline.Pipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		pass.DispatchWorkgroups(
			workgroups(texture.Width(), c.workgroupSize),
			workgroups(texture.Height(), c.workgroupSize),
			1,
		)
	})

	if err != nil {
		enc.Release()
		return 0, err
	}

	return enc.Submit()
}

func (c *CubeCompute) bindGroup(pipeline *CachedPipeline[*wgpu.ComputePipeline], texture *Texture) (*wgpu.BindGroup, error) {
	if cached, ok := c.bindGroups.Get(texture.ID()); ok {
		return cached, nil
	}

	bindGroup, err := c.ctx.TryCreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "CubeCompute",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  c.camera.Buffer(),
				Size:    wgpu.WholeSize,
			},
			{
				Binding:     1,
				TextureView: texture.View(),
			},
			{
				Binding:     2,
				TextureView: c.faceTexture.View(),
			},
			{
				Binding: 3,
				Sampler: c.faceSampler,
			},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("create compute bind group: %w", err)
	}

	c.bindGroups.Add(texture.ID(), bindGroup)

	return bindGroup, nil
}

func (c *CubeCompute) Release() {
	c.bindGroups.Purge()
	c.pipelines.Purge()
	c.camera.Release()
	c.faceTexture.Release()
}

// workgroups returns the number of workgroups to cover size pixels.
func workgroups(size, workgroupSize uint32) uint32 {
	return (size + workgroupSize - 1) / workgroupSize
}

func releaseBindGroupOnEviction[K comparable](_ K, bindGroup *wgpu.BindGroup) {
	bindGroup.Release()
}
