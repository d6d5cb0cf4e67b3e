package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/geocache/internal/adapters/hash"
	"go.trai.ch/geocache/internal/adapters/telemetry"
	"go.trai.ch/geocache/internal/app"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func mockComponents(ctrl *gomock.Controller, loader *mocks.MockConfigLoader, logger *mocks.MockLogger) ComponentProvider {
	application := app.New(
		loader,
		logger,
		hash.NewHasher(),
		mocks.NewMockStoreFactory(ctrl),
		mocks.NewMockFeedOpener(ctrl),
		telemetry.NewNoOpTracer(),
	)
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: logger,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mockComponents(ctrl, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when
// the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	tmp := t.TempDir()

	loader.EXPECT().Load(tmp).Return(nil, domain.ErrConfigInvalid)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	exitCode := run(context.Background(), []string{"status"}, io.Discard, mockComponents(ctrl, loader, logger),
		func(a *app.App) {
			a.WithWorkDir(tmp)
		})

	assert.Equal(t, 1, exitCode)
}

// TestRun_ResetRefused verifies that an unconfirmed reset fails without
// touching the configuration.
func TestRun_ResetRefused(t *testing.T) {
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrResetNotConfirmed)
	})

	// Closing the pipe's writer makes the prompt read EOF.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	originalStdin := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = originalStdin
		_ = r.Close()
	}()

	exitCode := run(context.Background(), []string{"reset"}, io.Discard,
		mockComponents(ctrl, mocks.NewMockConfigLoader(ctrl), logger),
		func(a *app.App) {
			a.WithOutput(io.Discard)
		})

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)

	// We need a loader that blocks until context is done.
	blockCh := make(chan struct{})

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Settings, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})

	logger := mocks.NewMockLogger(ctrl)
	// Allow logging of the error when context is canceled
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	provider := mockComponents(ctrl, loader, logger)
	tmp := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"status"}, io.Discard, provider, func(a *app.App) {
			a.WithWorkDir(tmp)
		})
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}

// TestRun_Wiring runs real commands through the registered Graft nodes.
func TestRun_Wiring(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	tmp := t.TempDir()
	out := new(bytes.Buffer)

	provider := func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}
	opt := func(a *app.App) {
		a.WithWorkDir(tmp).WithOutput(out)
	}

	require.Equal(t, 0, run(context.Background(), []string{"walk", "n", "e"}, io.Discard, provider, opt))
	assert.FileExists(t, filepath.Join(tmp, domain.DefaultSavePath()))

	out.Reset()
	require.Equal(t, 0, run(context.Background(), []string{"status"}, io.Discard, provider, opt))
	assert.Contains(t, out.String(), "(cell 1,1)")
}
