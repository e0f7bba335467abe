package pulse

import (
	"fmt"
	"sync/atomic"

	"github.com/oliverbestmann/cube/orion"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var textureIDs atomic.Uint64

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	// unique id of this texture, used as a cache key for bind groups
	id uint64

	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	format wgpu.TextureFormat

	width  uint32
	height uint32

	released bool
}

var _ orion.Image = (*Texture)(nil)

// StorageFormat is the format of the intermediate image. It can be written
// from a compute shader and sampled when compositing.
const StorageFormat = wgpu.TextureFormatRGBA8Unorm

type NewTextureOptions struct {
	Label  string
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Usage  wgpu.TextureUsage
}

// NewStorageTexture creates a texture a compute shader can write to.
func NewStorageTexture(ctx *Context, width, height uint32) (*Texture, error) {
	return NewTexture(ctx, NewTextureOptions{
		Label:  "IntermediateImage",
		Format: StorageFormat,
		Width:  width,
		Height: height,
		Usage: wgpu.TextureUsageStorageBinding |
			wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageCopyDst,
	})
}

func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	if opts.Width == 0 || opts.Height == 0 {
		return nil, fmt.Errorf("texture %q of size %dx%d", opts.Label, opts.Width, opts.Height)
	}

	if opts.Usage == 0 {
		opts.Usage = wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst
	}

	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		Usage:         opts.Usage,
		Dimension:     wgpu.TextureDimension2D,
		SampleCount:   1,
		MipLevelCount: 1,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},
	})
}

// NewTextureFromDesc gives you full control and creates a texture directly from
// a texture descriptor
func NewTextureFromDesc(ctx *Context, desc *wgpu.TextureDescriptor) (*Texture, error) {
	texture := ctx.CreateTexture(desc)

	textureView, err := texture.TryCreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create view of texture %q: %w", desc.Label, err)
	}

	t := &Texture{
		id:          textureIDs.Add(1),
		texture:     texture,
		textureView: textureView,
		format:      desc.Format,
		width:       desc.Size.Width,
		height:      desc.Size.Height,
	}

	// textures that are dropped without Release are freed by the gc
	return RegisterWithGC(t), nil
}

func (t *Texture) ID() uint64 {
	return t.id
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

// Release releases the texture and its view. Releasing twice is a no-op.
func (t *Texture) Release() {
	if t.released {
		return
	}

	t.released = true
	t.textureView.Release()
	t.texture.Release()
}

// WritePixels uploads tightly packed rgba8 pixels covering the whole texture.
func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	stride := t.width * 4

	if len(pixels) != int(stride*t.height) {
		return fmt.Errorf("expected %d bytes of pixel data, got %d", stride*t.height, len(pixels))
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  stride,
		RowsPerImage: t.height,
	}

	size := &wgpu.Extent3D{
		Width:              t.width,
		Height:             t.height,
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: 0,
		Aspect:   wgpu.TextureAspectAll,
	}

	// send data to the gpu
	ctx.WriteTexture(dest, pixels, layout, size)

	return nil
}
