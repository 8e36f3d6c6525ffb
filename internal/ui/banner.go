package ui

// bannerRows is the start-screen wordmark shown above the main menu.
var bannerRows = []string{
	`  ___ _   _ ___ ___ ___  ___  ___ ___ `,
	` / __| | | / __| __/ _ \| _ \/ __| __|`,
	` \__ \ |_| \__ \ _| (_) |   / (_ | _| `,
	` |___/\__, |___/_| \___/|_|_\\___|___|`,
	`      |___/                           `,
}
