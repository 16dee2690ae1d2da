package power

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"vshell/internal/errors"

	"github.com/gobwas/glob"
)

// Discoverer finds the node of the power relay, or returns "" when none is
// attached.
type Discoverer interface {
	Discover() (string, error)
}

// Candidate is one enumerated hidraw device.
type Candidate struct {
	Node     string // e.g. /dev/hidraw0
	UdevPath string // resolved sysfs path carrying bus:vendor:product
	Match    bool   // UdevPath matches the relay signature
}

// SysfsDiscoverer enumerates hidraw devices through sysfs. Each class entry
// links to the device directory named bus:vendor:product.instance, which is
// the same path `udevadm info -q path` reports.
type SysfsDiscoverer struct {
	classDir  string
	devDir    string
	signature glob.Glob
}

// NewSysfsDiscoverer compiles the signature glob.
func NewSysfsDiscoverer(classDir, devDir, signature string) (*SysfsDiscoverer, error) {
	g, err := glob.Compile(signature)
	if err != nil {
		return nil, errors.NewConfigError("invalid device signature", signature, errors.InvalidConfig, err)
	}
	return &SysfsDiscoverer{
		classDir:  classDir,
		devDir:    devDir,
		signature: g,
	}, nil
}

// Candidates lists every hidraw device, sorted by node name.
func (d *SysfsDiscoverer) Candidates() ([]Candidate, error) {
	entries, err := os.ReadDir(d.classDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", d.classDir, err)
	}

	var out []Candidate
	for _, entry := range entries {
		udevPath, err := filepath.EvalSymlinks(filepath.Join(d.classDir, entry.Name()))
		if err != nil {
			continue
		}
		out = append(out, Candidate{
			Node:     filepath.Join(d.devDir, entry.Name()),
			UdevPath: udevPath,
			Match:    d.signature.Match(udevPath),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })
	return out, nil
}

// Discover returns the first matching node.
func (d *SysfsDiscoverer) Discover() (string, error) {
	candidates, err := d.Candidates()
	if err != nil {
		return "", errors.NewDeviceError("device enumeration failed", d.classDir, errors.DeviceUnavailable, err)
	}
	for _, c := range candidates {
		if c.Match {
			return c.Node, nil
		}
	}
	return "", errors.ErrNoDevice
}
