package zfsapi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// RealClient drives the zfs binary. Every operation builds a discrete
// argument vector; parameters are never spliced into a shell string.
type RealClient struct {
	zfsPath string

	// Transfer streams; the process stdio in production, buffers in
	// tests.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewReal returns a client that invokes the given zfs binary with the
// process's own stdio for transfer steps.
func NewReal(zfsPath string) *RealClient {
	return &RealClient{
		zfsPath: zfsPath,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

func (c *RealClient) ListSnapshots() ([]string, error) {
	cmd := exec.Command(c.zfsPath, listArgs()...)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	out, err := cmd.Output()
	if err != nil {
		return nil, commandError("list", err, errBuf.String())
	}
	var rows []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			rows = append(rows, line)
		}
	}
	return rows, nil
}

func (c *RealClient) CreateSnapshot(name string) error {
	return c.run(snapshotArgs(name)...)
}

func (c *RealClient) DestroySnapshot(name string) error {
	return c.run(destroyArgs(name)...)
}

func (c *RealClient) Unmount(volume string) error {
	return c.run(unmountArgs(volume)...)
}

func (c *RealClient) Rollback(name string) error {
	return c.run(rollbackArgs(name)...)
}

// Send hands stdout to the child so the payload never passes through the
// agent; memory use is independent of snapshot size.
func (c *RealClient) Send(snapshot string) error {
	return c.transfer(nil, sendArgs(snapshot)...)
}

func (c *RealClient) SendIncremental(base, target string) error {
	return c.transfer(nil, sendIncrementalArgs(base, target)...)
}

func (c *RealClient) Receive(volume string) error {
	return c.transfer(c.stdin, receiveArgs(volume)...)
}

// run executes a metadata command to completion, folding captured stderr
// into the returned error.
func (c *RealClient) run(args ...string) error {
	cmd := exec.Command(c.zfsPath, args...)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return commandError(args[0], err, errBuf.String())
	}
	return nil
}

// transfer executes a send/receive child with inherited streams. The
// returned error, if any, is the child's *exec.ExitError so the caller can
// exit with the child's own status.
func (c *RealClient) transfer(stdin io.Reader, args ...string) error {
	cmd := exec.Command(c.zfsPath, args...)
	cmd.Stdin = stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	return cmd.Run()
}

func commandError(op string, err error, stderr string) error {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("zfs %s: %w: %s", op, err, msg)
	}
	return fmt.Errorf("zfs %s: %w", op, err)
}

// Argument vectors, one helper per storage operation.

func listArgs() []string {
	return []string{"list", "-H", "-o", "name", "-t", "filesystem,volume,snapshot"}
}

func snapshotArgs(name string) []string {
	return []string{"snapshot", name}
}

func destroyArgs(name string) []string {
	return []string{"destroy", name}
}

func unmountArgs(volume string) []string {
	return []string{"unmount", volume}
}

func rollbackArgs(name string) []string {
	// -r: the rollback target is older than the incremental marker left
	// behind by a prior receive.
	return []string{"rollback", "-r", name}
}

func sendArgs(snapshot string) []string {
	return []string{"send", snapshot}
}

func sendIncrementalArgs(base, target string) []string {
	return []string{"send", "-i", base, target}
}

func receiveArgs(volume string) []string {
	return []string{"receive", volume}
}
