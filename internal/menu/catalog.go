package menu

import "github.com/nvasko/sysforge/internal/task"

// Catalog returns the full set of menu views. The result is constructed once
// at startup; callers must not mutate it.
func Catalog() []Definition {
	return []Definition{
		{
			View:  MainMenu,
			Title: "Main Menu",
			Entries: []Entry{
				{
					Icon:   "[R]",
					Label:  "Replicator (Recommended)",
					Help:   "The Replicator captures the 'recipe' for your system (packages, configs) into a single snapshot file. Use it to perform a clean, fresh installation on new hardware that matches your setup.",
					Action: SetView(Replicator),
				},
				{
					Icon:   "[C]",
					Label:  "Cloner (Advanced)",
					Help:   "The Cloner builds a direct, bootable ISO image of your current system. Best for full backups or moving your exact OS to identical hardware.",
					Action: SetView(Cloner),
				},
				{
					Icon:   "[U]",
					Label:  "Utilities & Manual Tools",
					Help:   "Essential tools for system maintenance: hardware inspector, disk usage report, and hostname configuration.",
					Action: SetView(Utilities),
				},
				{
					Icon:   "[M]",
					Label:  "Manual Installer",
					Help:   "Step-by-step installation helpers: partition a target disk, install the base system, and generate fstab.",
					Action: SetView(ManualInstaller),
				},
				{
					Icon:   "[H]",
					Label:  "Help Manual",
					Help:   "Displays the main help manual for the entire application.",
					Action: SetView(HelpManual),
				},
				{
					Icon:   "[Q]",
					Label:  "Quit",
					Help:   "Exits the application.",
					Action: Quit(),
				},
			},
		},
		{
			View:  Replicator,
			Title: "Replicator",
			Entries: []Entry{
				{
					Icon:   "[S]",
					Label:  "Create snapshot",
					Help:   "Exports package lists and archives /etc plus your dotfiles into a single timestamped snapshot tarball.",
					Action: Execute(task.SnapshotCreate),
					Gate:   GateConfirm,
					Prompt: "Create a new system snapshot?",
				},
				{
					Icon:   "[V]",
					Label:  "Verify latest snapshot",
					Help:   "Checks the integrity of the most recent snapshot archive.",
					Action: Execute(task.SnapshotVerify),
				},
				{
					Icon:   "[L]",
					Label:  "List snapshots",
					Help:   "Shows every snapshot in the work directory with its size and age.",
					Action: Execute(task.SnapshotList),
				},
				{
					Icon:   "[P]",
					Label:  "Prune old snapshots",
					Help:   "Deletes all snapshots except the most recent one.",
					Action: Execute(task.SnapshotPrune),
					Gate:   GateConfirm,
					Prompt: "Delete all snapshots except the newest?",
				},
				backEntry(),
			},
		},
		{
			View:  Cloner,
			Title: "Cloner",
			Entries: []Entry{
				{
					Icon:   "[I]",
					Label:  "Build bootable ISO",
					Help:   "Builds a bootable ISO image of the current system in the work directory. This can take a long time.",
					Action: Execute(task.CloneISO),
					Gate:   GateConfirm,
					Prompt: "Build a bootable ISO now? This can take a while.",
				},
				{
					Icon:    "[F]",
					Label:   "Flash ISO to USB",
					Help:    "Writes the most recently built ISO to a USB disk. The selected disk is wiped.",
					Action:  Execute(task.FlashUSB),
					Gate:    GateSelect,
					Prompt:  "Select target disk (will be wiped)",
					Choices: task.ListDisks,
				},
				backEntry(),
			},
		},
		{
			View:  Utilities,
			Title: "Utilities",
			Entries: []Entry{
				{
					Icon:   "[W]",
					Label:  "Hardware inspector",
					Help:   "Lists the machine's PCI devices.",
					Action: Execute(task.HardwareInspect),
				},
				{
					Icon:   "[D]",
					Label:  "Disk usage report",
					Help:   "Shows mounted filesystems with size, used, and available space.",
					Action: Execute(task.DiskUsage),
				},
				{
					Icon:        "[N]",
					Label:       "Set hostname",
					Help:        "Changes the machine hostname via hostnamectl.",
					Action:      Execute(task.SetHostname),
					Gate:        GateInput,
					Prompt:      "New hostname",
					Placeholder: "my-machine",
				},
				backEntry(),
			},
		},
		{
			View:  ManualInstaller,
			Title: "Manual Installer",
			Entries: []Entry{
				{
					Icon:    "[P]",
					Label:   "Partition target disk",
					Help:    "Wipes the selected disk and creates a 512M EFI partition plus a root partition.",
					Action:  Execute(task.PartitionDisk),
					Gate:    GateSelect,
					Prompt:  "Select disk to partition (will be wiped)",
					Choices: task.ListDisks,
				},
				{
					Icon:   "[B]",
					Label:  "Install base system",
					Help:   "Runs pacstrap to install the base system onto /mnt.",
					Action: Execute(task.InstallBase),
					Gate:   GateConfirm,
					Prompt: "Install the base system to /mnt?",
				},
				{
					Icon:   "[G]",
					Label:  "Generate fstab",
					Help:   "Appends a UUID-based fstab for /mnt to /mnt/etc/fstab.",
					Action: Execute(task.GenerateFstab),
				},
				backEntry(),
			},
		},
	}
}

func backEntry() Entry {
	return Entry{
		Icon:   "[<]",
		Label:  "Back to main menu",
		Help:   "Returns to the main menu.",
		Action: SetView(MainMenu),
	}
}

// HelpManualText is the body of the full-screen help view.
const HelpManualText = "sysforge manages system replication and maintenance from one place.\n\n" +
	"The Replicator captures the recipe of your system (explicit package lists, /etc, and dotfiles) into a snapshot tarball that can rebuild the machine from scratch.\n\n" +
	"The Cloner produces a direct bootable ISO image of the running system and can flash it onto a USB disk.\n\n" +
	"Utilities collect smaller maintenance helpers, and the Manual Installer walks through disk partitioning, base-system installation, and fstab generation.\n\n" +
	"Navigate with j/k or the arrow keys, select with Enter, and press '?' on any entry for context help. Press 'q' or Esc to return to the main menu."
