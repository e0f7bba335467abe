package orion

import (
	"errors"
	"fmt"
)

// NullImage is the Image of a NullCompute.
type NullImage struct {
	width, height uint32
	Released      bool
}

func (img *NullImage) Width() uint32  { return img.width }
func (img *NullImage) Height() uint32 { return img.height }
func (img *NullImage) Release()       { img.Released = true }

// NullFrame is a presentable frame without any backing memory.
type NullFrame struct {
	width, height uint32
}

func (f NullFrame) Width() uint32  { return f.width }
func (f NullFrame) Height() uint32 { return f.height }

// Call records one invocation of a null stage.
type Call struct {
	Stage      string
	Submission Submission
	Width      uint32
	Height     uint32
}

// CallLog records calls to the null stages in submission order. Both stages
// of an App should share the same log.
type CallLog struct {
	Calls []Call
	next  Submission
}

func (l *CallLog) record(stage string, width, height uint32) Submission {
	l.next += 1
	l.Calls = append(l.Calls, Call{Stage: stage, Submission: l.next, Width: width, Height: height})
	return l.next
}

// Count returns the number of recorded calls of the given stage.
func (l *CallLog) Count(stage string) int {
	var count int
	for _, call := range l.Calls {
		if call.Stage == stage {
			count++
		}
	}

	return count
}

// NullCompute is a ComputeStage that does not touch any gpu.
type NullCompute struct {
	Log *CallLog

	Images   []*NullImage
	Cameras  []CameraState
	Released bool

	// returned by Compute if set
	Err error
}

func (c *NullCompute) NewImage(width, height uint32) (Image, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("image of size %dx%d", width, height)
	}

	img := &NullImage{width: width, height: height}
	c.Images = append(c.Images, img)
	return img, nil
}

func (c *NullCompute) Compute(target Image, camera CameraState) (Submission, error) {
	if c.Err != nil {
		return 0, c.Err
	}

	if img, ok := target.(*NullImage); !ok || img.Released {
		return 0, errors.New("compute into released or foreign image")
	}

	c.Cameras = append(c.Cameras, camera)
	return c.Log.record("compute", target.Width(), target.Height()), nil
}

func (c *NullCompute) Release() {
	c.Released = true
}

// NullComposite is a CompositeStage that does not touch any gpu.
type NullComposite struct {
	Log      *CallLog
	Released bool
}

func (c *NullComposite) RenderOver(frame Frame, image Image) (Submission, error) {
	if frame.Width() != image.Width() || frame.Height() != image.Height() {
		return 0, fmt.Errorf("image %dx%d does not match frame %dx%d",
			image.Width(), image.Height(), frame.Width(), frame.Height())
	}

	return c.Log.record("composite", frame.Width(), frame.Height()), nil
}

func (c *NullComposite) Release() {
	c.Released = true
}

// NullSurface is a Surface that hands out frames of its configured size.
type NullSurface struct {
	width, height uint32

	Resizes  int
	Acquires int
	Presents int

	// LoseNext makes the next AcquireFrame fail with ErrSurfaceLost
	LoseNext bool
}

func (s *NullSurface) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("configure surface of size %dx%d", width, height)
	}

	s.width, s.height = width, height
	s.Resizes++
	return nil
}

func (s *NullSurface) AcquireFrame() (Frame, error) {
	if s.LoseNext {
		s.LoseNext = false
		return nil, ErrSurfaceLost
	}

	if s.width == 0 || s.height == 0 {
		return nil, errors.New("surface not configured")
	}

	s.Acquires++
	return NullFrame{width: s.width, height: s.height}, nil
}

func (s *NullSurface) Present(frame Frame) {
	s.Presents++
}

// NewNullStages returns a compute and composite stage sharing one CallLog.
func NewNullStages() (*NullCompute, *NullComposite, *CallLog) {
	log := &CallLog{}
	return &NullCompute{Log: log}, &NullComposite{Log: log}, log
}
