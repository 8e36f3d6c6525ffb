package task

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nvasko/sysforge/internal/format/table"
)

// Operation IDs referenced by the menu catalog.
const (
	SnapshotCreate  ID = "snapshot:create"
	SnapshotVerify  ID = "snapshot:verify"
	SnapshotPrune   ID = "snapshot:prune"
	SnapshotList    ID = "snapshot:list"
	CloneISO        ID = "clone:iso"
	FlashUSB        ID = "clone:flash"
	HardwareInspect ID = "util:hardware"
	DiskUsage       ID = "util:disk-usage"
	SetHostname     ID = "util:hostname"
	PartitionDisk   ID = "install:partition"
	InstallBase     ID = "install:base"
	GenerateFstab   ID = "install:fstab"
)

// DefaultRegistry wires the stock system-maintenance operations. workDir is
// where snapshots and ISO builds are staged.
func DefaultRegistry(workDir string) *Registry {
	r := NewRegistry()
	r.MustRegister(SnapshotCreate, snapshotCreate(workDir))
	r.MustRegister(SnapshotVerify, snapshotVerify(workDir))
	r.MustRegister(SnapshotPrune, snapshotPrune(workDir))
	r.MustRegister(SnapshotList, snapshotList(workDir))
	r.MustRegister(CloneISO, cloneISO(workDir))
	r.MustRegister(FlashUSB, flashUSB(workDir))
	r.MustRegister(HardwareInspect, hardwareInspect)
	r.MustRegister(DiskUsage, diskUsage)
	r.MustRegister(SetHostname, setHostname)
	r.MustRegister(PartitionDisk, partitionDisk)
	r.MustRegister(InstallBase, installBase)
	r.MustRegister(GenerateFstab, generateFstab)
	return r
}

// runShell executes a shell script fragment and returns its trimmed stdout.
// Failures surface the command's stderr verbatim so the popup shows what the
// underlying tool reported.
func runShell(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%s", detail)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func snapshotCreate(workDir string) Fn {
	return func(ctx context.Context, _ string) (string, error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %s", err)
		}
		stageDir := filepath.Join(workDir, "snapshot_tmp")
		if err := os.MkdirAll(stageDir, 0o755); err != nil {
			return "", fmt.Errorf("create staging directory: %s", err)
		}
		snapshotFile := filepath.Join(workDir, fmt.Sprintf("snapshot-%s.tar.gz", time.Now().Format("20060102-150405")))
		script := fmt.Sprintf(
			"pacman -Qqe > %[1]s/packages.x86_64.txt && "+
				"pacman -Qqm > %[1]s/packages.foreign.txt && "+
				"tar -czf %[1]s/etc.tar.gz -C / etc && "+
				"tar -czf %[1]s/home.tar.gz -C %[2]s --exclude='.cache' . && "+
				"tar -czf %[3]s -C %[1]s . && "+
				"rm -rf %[1]s",
			stageDir, home, snapshotFile,
		)
		if _, err := runShell(ctx, script); err != nil {
			return "", err
		}
		size := "unknown size"
		if info, statErr := os.Stat(snapshotFile); statErr == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		return fmt.Sprintf("Snapshot created (%s):\n%s", size, snapshotFile), nil
	}
}

func snapshotVerify(workDir string) Fn {
	return func(ctx context.Context, _ string) (string, error) {
		latest, err := latestSnapshot(workDir)
		if err != nil {
			return "", err
		}
		if _, err := runShell(ctx, fmt.Sprintf("tar -tzf %q > /dev/null", latest)); err != nil {
			return "", fmt.Errorf("snapshot %s is corrupt: %s", filepath.Base(latest), err)
		}
		return fmt.Sprintf("Snapshot %s verified.", filepath.Base(latest)), nil
	}
}

func snapshotPrune(workDir string) Fn {
	return func(ctx context.Context, _ string) (string, error) {
		snaps, err := listSnapshots(workDir)
		if err != nil {
			return "", err
		}
		if len(snaps) <= 1 {
			return "Nothing to prune.", nil
		}
		pruned := 0
		for _, snap := range snaps[:len(snaps)-1] {
			if err := os.Remove(snap); err != nil {
				return "", fmt.Errorf("remove %s: %s", filepath.Base(snap), err)
			}
			pruned++
		}
		return fmt.Sprintf("Pruned %d old snapshot(s); kept %s.", pruned, filepath.Base(snaps[len(snaps)-1])), nil
	}
}

func snapshotList(workDir string) Fn {
	return func(_ context.Context, _ string) (string, error) {
		snaps, err := listSnapshots(workDir)
		if err != nil {
			return "", err
		}
		rows := make([][]string, 0, len(snaps))
		for _, snap := range snaps {
			size := "?"
			age := "?"
			if info, statErr := os.Stat(snap); statErr == nil {
				size = humanize.Bytes(uint64(info.Size()))
				age = humanize.Time(info.ModTime())
			}
			rows = append(rows, []string{filepath.Base(snap), size, age})
		}
		lines := table.Render(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
		return strings.Join(lines, "\n"), nil
	}
}

func cloneISO(workDir string) Fn {
	return func(ctx context.Context, _ string) (string, error) {
		isoDir := filepath.Join(workDir, "iso")
		if err := os.MkdirAll(isoDir, 0o755); err != nil {
			return "", fmt.Errorf("create ISO directory: %s", err)
		}
		out, err := runShell(ctx, fmt.Sprintf("mkarchiso -v -w %[1]s/build -o %[1]s %[1]s/profile 2>&1 | tail -n 1", isoDir))
		if err != nil {
			return "", err
		}
		if out == "" {
			out = isoDir
		}
		return fmt.Sprintf("Bootable ISO built under:\n%s", out), nil
	}
}

func flashUSB(workDir string) Fn {
	return func(ctx context.Context, disk string) (string, error) {
		device := diskDevice(disk)
		if device == "" {
			return "", fmt.Errorf("no target disk selected")
		}
		iso, err := latestGlob(filepath.Join(workDir, "iso", "*.iso"))
		if err != nil {
			return "", fmt.Errorf("no ISO image found; build one first")
		}
		script := fmt.Sprintf("dd if=%q of=/dev/%s bs=4M conv=fsync oflag=direct status=none && sync", iso, device)
		if _, err := runShell(ctx, script); err != nil {
			return "", err
		}
		return fmt.Sprintf("Flashed %s to /dev/%s.", filepath.Base(iso), device), nil
	}
}

func hardwareInspect(ctx context.Context, _ string) (string, error) {
	out, err := runShell(ctx, "lspci -nn | head -n 20")
	if err != nil {
		return "", err
	}
	if out == "" {
		return "No PCI devices reported.", nil
	}
	return out, nil
}

func diskUsage(ctx context.Context, _ string) (string, error) {
	return runShell(ctx, "df -h --output=target,size,used,avail,pcent -x tmpfs -x devtmpfs")
}

func setHostname(ctx context.Context, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("hostname must not be empty")
	}
	if strings.ContainsAny(trimmed, " \t") {
		return "", fmt.Errorf("hostname must not contain whitespace")
	}
	if _, err := runShell(ctx, fmt.Sprintf("hostnamectl set-hostname %q", trimmed)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Hostname set to %s.", trimmed), nil
}

func partitionDisk(ctx context.Context, disk string) (string, error) {
	device := diskDevice(disk)
	if device == "" {
		return "", fmt.Errorf("no target disk selected")
	}
	script := fmt.Sprintf(
		"sgdisk --zap-all /dev/%[1]s && "+
			"sgdisk -n 1:0:+512M -t 1:ef00 -n 2:0:0 -t 2:8300 /dev/%[1]s",
		device,
	)
	if _, err := runShell(ctx, script); err != nil {
		return "", err
	}
	return fmt.Sprintf("Partitioned /dev/%s (512M EFI + root).", device), nil
}

func installBase(ctx context.Context, _ string) (string, error) {
	if _, err := runShell(ctx, "pacstrap /mnt base linux linux-firmware"); err != nil {
		return "", err
	}
	return "Base system installed to /mnt.", nil
}

func generateFstab(ctx context.Context, _ string) (string, error) {
	if _, err := runShell(ctx, "genfstab -U /mnt >> /mnt/etc/fstab"); err != nil {
		return "", err
	}
	return "fstab generated at /mnt/etc/fstab.", nil
}

// ListDisks enumerates whole disks for the choice popup, one entry per line
// in "name size model" form.
func ListDisks(ctx context.Context) ([]string, error) {
	out, err := runShell(ctx, "lsblk -dno NAME,SIZE,TYPE,MODEL")
	if err != nil {
		return nil, err
	}
	var disks []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[2] != "disk" {
			continue
		}
		label := fields[0] + "  " + fields[1]
		if len(fields) > 3 {
			label += "  " + strings.Join(fields[3:], " ")
		}
		disks = append(disks, label)
	}
	return disks, nil
}

// diskDevice extracts the device name from a ListDisks entry.
func diskDevice(choice string) string {
	fields := strings.Fields(choice)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func listSnapshots(workDir string) ([]string, error) {
	snaps, err := filepath.Glob(filepath.Join(workDir, "snapshot-*.tar.gz"))
	if err != nil || len(snaps) == 0 {
		return nil, fmt.Errorf("no snapshots found under %s", workDir)
	}
	return snaps, nil
}

func latestSnapshot(workDir string) (string, error) {
	snaps, err := listSnapshots(workDir)
	if err != nil {
		return "", err
	}
	return snaps[len(snaps)-1], nil
}

func latestGlob(pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("no matches for %s", pattern)
	}
	return matches[len(matches)-1], nil
}
