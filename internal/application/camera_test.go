package app

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eye-detector/internal/domain/entity"
)

func newTestCameraService(faces []entity.BoundingBox, eyes []entity.BoundingBox) *CameraService {
	logger, _ := test.NewNullLogger()
	face, eye := &mockLocator{}, &mockLocator{}
	face.On("Locate", mock.Anything, entity.CameraFaceParams).Return(faces)
	eye.On("Locate", mock.Anything, entity.DefaultEyeParams).Return(eyes)
	detection := NewDetectionService(Detectors{Face: face, Eye: eye}, nil, logger)
	return NewCameraService(detection, logger)
}

func TestCameraService_StopsWhenSourceEnds(t *testing.T) {
	svc := newTestCameraService([]entity.BoundingBox{testFace}, []entity.BoundingBox{leftEye})
	frames := []*fakeFrame{newFakeFrame(100, 100), newFakeFrame(100, 100), newFakeFrame(100, 100)}
	source := &fakeSource{frames: frames}
	display := &fakeDisplay{}

	err := svc.Run(context.Background(), source, display)
	require.NoError(t, err)
	require.Len(t, display.shown, 3)

	for _, f := range frames {
		require.True(t, f.closed)
		texts := f.texts()
		require.Len(t, texts, 1)
		require.Equal(t, entity.StatusEyesDetected, texts[0].Text)
		require.Equal(t, okColor, texts[0].Color)
	}
}

func TestCameraService_QuitKey(t *testing.T) {
	svc := newTestCameraService(nil, nil)
	source := &fakeSource{frames: []*fakeFrame{
		newFakeFrame(10, 10), newFakeFrame(10, 10), newFakeFrame(10, 10),
	}}
	display := &fakeDisplay{quitAfter: 2}

	err := svc.Run(context.Background(), source, display)
	require.NoError(t, err)
	require.Len(t, display.shown, 2)
	require.Equal(t, 2, source.reads)
}

func TestCameraService_NoFaceLeavesFrameUnannotated(t *testing.T) {
	svc := newTestCameraService(nil, nil)
	frame := newFakeFrame(10, 10)
	display := &fakeDisplay{}

	err := svc.Run(context.Background(), &fakeSource{frames: []*fakeFrame{frame}}, display)
	require.NoError(t, err)
	require.Len(t, display.shown, 1)
	require.Empty(t, frame.draws)
}

func TestCameraService_SkipsEmptyFrames(t *testing.T) {
	svc := newTestCameraService(nil, nil)
	source := &fakeSource{frames: []*fakeFrame{newFakeFrame(0, 0), newFakeFrame(10, 10)}}
	display := &fakeDisplay{}

	err := svc.Run(context.Background(), source, display)
	require.NoError(t, err)
	require.Len(t, display.shown, 1)
}

func TestCameraService_ContextCancelled(t *testing.T) {
	svc := newTestCameraService(nil, nil)
	source := &fakeSource{frames: []*fakeFrame{newFakeFrame(10, 10)}}
	display := &fakeDisplay{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Run(ctx, source, display)
	require.NoError(t, err)
	require.Zero(t, source.reads)
	require.Empty(t, display.shown)
}

func TestCameraService_DetectorMissing(t *testing.T) {
	logger, _ := test.NewNullLogger()
	svc := NewCameraService(NewDetectionService(Detectors{}, nil, logger), logger)

	err := svc.Run(context.Background(), &fakeSource{frames: []*fakeFrame{newFakeFrame(10, 10)}}, &fakeDisplay{})
	require.ErrorIs(t, err, ErrDetectorNotConfigured)
}
