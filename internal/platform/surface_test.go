package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfacePortIsStableAndInRange(t *testing.T) {
	port := surfacePort("com.midnight.countdown/root")
	assert.Equal(t, port, surfacePort("com.midnight.countdown/root"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
	assert.NotEqual(t, port, surfacePort("com.midnight.countdown/tray"))
}

func TestSurfaceMountsOnce(t *testing.T) {
	surfaceID := "com.midnight.countdown/test-" + t.Name()
	guard, err := AcquireSurface(surfaceID)
	require.NoError(t, err)

	_, err = AcquireSurface(surfaceID)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())
	again, err := AcquireSurface(surfaceID)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestNilGuardRelease(t *testing.T) {
	var guard *SurfaceGuard
	assert.NoError(t, guard.Release())
	assert.Equal(t, "", guard.Address())
}
