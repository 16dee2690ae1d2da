package power

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"vshell/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSysfs builds a hidraw class directory whose entries link to device
// directories named like the kernel does.
func fakeSysfs(t *testing.T, devices map[string]string) string {
	t.Helper()
	root := t.TempDir()
	class := filepath.Join(root, "class", "hidraw")
	require.NoError(t, os.MkdirAll(class, 0755))
	for node, hid := range devices {
		target := filepath.Join(root, "devices", "usb1", hid, "hidraw", node)
		require.NoError(t, os.MkdirAll(target, 0755))
		require.NoError(t, os.Symlink(target, filepath.Join(class, node)))
	}
	return class
}

func TestSysfsDiscoverer(t *testing.T) {
	class := fakeSysfs(t, map[string]string{
		"hidraw0": "0003:046D:C52B.0001",
		"hidraw1": "0003:16C0:05DF.0002",
		"hidraw2": "0003:16C0:05DF.0003",
	})

	d, err := NewSysfsDiscoverer(class, "/dev", "*:16C0:05DF.*")
	require.NoError(t, err)

	candidates, err := d.Candidates()
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "/dev/hidraw0", candidates[0].Node)
	assert.False(t, candidates[0].Match)
	assert.True(t, candidates[1].Match)
	assert.Contains(t, candidates[1].UdevPath, "0003:16C0:05DF.0002")

	node, err := d.Discover()
	require.NoError(t, err)
	assert.Equal(t, "/dev/hidraw1", node)
}

func TestSysfsDiscovererNoMatch(t *testing.T) {
	class := fakeSysfs(t, map[string]string{"hidraw0": "0003:046D:C52B.0001"})
	d, err := NewSysfsDiscoverer(class, "/dev", "*:16C0:05DF.*")
	require.NoError(t, err)

	node, err := d.Discover()
	assert.Empty(t, node)
	assert.True(t, errors.IsDeviceUnavailable(err))
}

func TestSysfsDiscovererMissingClass(t *testing.T) {
	d, err := NewSysfsDiscoverer(filepath.Join(t.TempDir(), "absent"), "/dev", "*:16C0:05DF.*")
	require.NoError(t, err)

	candidates, err := d.Candidates()
	require.NoError(t, err)
	assert.Empty(t, candidates)

	_, err = d.Discover()
	assert.True(t, errors.IsDeviceUnavailable(err))
}

func TestSysfsDiscovererBadSignature(t *testing.T) {
	_, err := NewSysfsDiscoverer("/sys/class/hidraw", "/dev", "[")
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestWatchInvalidatesRemovedDevice(t *testing.T) {
	devDir := t.TempDir()
	node := filepath.Join(devDir, "hidraw0")
	require.NoError(t, os.WriteFile(node, nil, 0644))

	c := New(&fakeDiscoverer{node: node})
	require.NoError(t, c.Set(true))
	require.Equal(t, node, c.cached())

	w, err := NewWatch(devDir, c)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()
	assert.Error(t, w.Start())

	// Unrelated nodes leave the cache alone
	other := filepath.Join(devDir, "hidraw1")
	require.NoError(t, os.WriteFile(other, nil, 0644))
	require.NoError(t, os.Remove(other))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, node, c.cached())

	require.NoError(t, os.Remove(node))
	require.Eventually(t, func() bool { return c.cached() == "" }, 3*time.Second, 10*time.Millisecond)
}

func TestWatchMissingDir(t *testing.T) {
	_, err := NewWatch(filepath.Join(t.TempDir(), "absent"), New(&fakeDiscoverer{}))
	assert.Error(t, err)
}
