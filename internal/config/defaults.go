package config

import "strings"

// Screen names
const (
	ScreenRouter = "router"
	ScreenHelp   = "help"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Input: InputSettings{
			Keymap:         "auto",
			Mode:           "auto",
			PollIntervalMs: 100,
		},
		UI: UISettings{
			Title: "termnav",
		},
		Log: LogSettings{
			File:  "termnav.log",
			Level: "info",
		},
		Screens: map[string]Screen{
			ScreenRouter: routerScreen(),
			ScreenHelp:   helpScreen(),
		},
	}
}

func text(lines ...string) string {
	return strings.Join(lines, "\n")
}

func routerScreen() Screen {
	return Screen{
		Title: "Script Manager",
		Pages: []PageConfig{
			{ID: "home", Title: "Home", Sections: []SectionConfig{
				{Label: "Dashboard", Text: text(
					"Dashboard",
					"",
					"Welcome to the script manager. From here you can:",
					"  - organise your scripts",
					"  - run common commands",
					"  - watch running jobs",
					"  - browse the run history",
					"",
					"Today:",
					"  system   ok",
					"  scripts  15",
					"  runs     3",
				)},
				{Label: "Statistics", Text: text(
					"Statistics",
					"",
					"month  runs  success  avg",
					"-----  ----  -------  ----",
					"01     45    98%      2.3s",
					"02     38    96%      3.1s",
					"03     52    99%      1.8s",
					"",
					"shell   8 (53%)",
					"python  5 (33%)",
					"batch   2 (14%)",
				)},
				{Label: "Guide", Text: text(
					"Guide",
					"",
					"1. Press 1-4 to switch pages",
					"2. Use the arrow keys to pick a section",
					"3. Press Enter to open the section",
					"4. Press q to quit",
				)},
			}},
			{ID: "scripts", Title: "Scripts", Sections: []SectionConfig{
				{Label: "Script list", Text: text(
					"name             type    last run",
					"---------------  ------  ----------",
					"backup.sh        shell   2024-01-15",
					"cleanup.py       python  2024-01-14",
					"deploy.sh        shell   2024-01-12",
					"report.py        python  2024-01-10",
					"sync.bat         batch   2024-01-08",
				)},
				{Label: "Run history", Text: text(
					"14:30  backup.sh   ok      2.1s",
					"12:05  report.py   ok      4.8s",
					"09:12  deploy.sh   failed  0.4s",
				)},
				{Label: "New script", Text: text(
					"Create a script",
					"",
					"  name:     <script name>",
					"  type:     shell | python | batch",
					"  schedule: manual",
				)},
			}},
			{ID: "settings", Title: "Settings", Sections: []SectionConfig{
				{Label: "Interface", Text: text(
					"theme        dark",
					"language     en",
					"refresh      100ms",
				)},
				{Label: "Execution", Text: text(
					"timeout      300s",
					"parallel     4",
					"shell        /bin/sh",
				)},
				{Label: "Advanced", Text: text(
					"log level    info",
					"log file     termnav.log",
					"keymap       auto",
				)},
			}},
			{ID: "help", Title: "Help", Sections: []SectionConfig{
				{Label: "Shortcuts", Text: text(
					"1-4        switch page",
					"up/down    switch section",
					"home/end   first/last section",
					"enter      open section",
					"q          quit",
				)},
				{Label: "Quick start", Text: text(
					"Run `termnav help` for the scrollable manual.",
					"Run `termnav keys` to see what your terminal sends.",
				)},
				{Label: "FAQ", Text: text(
					"Arrow keys do nothing?",
					"  Set input.keymap in config.toml to csi or vk.",
					"",
					"No terminal attached?",
					"  Input falls back to line mode: type up, down, 1-9 or q and press Enter.",
				)},
			}},
		},
	}
}

func helpScreen() Screen {
	page := func(id, title, body string) PageConfig {
		return PageConfig{
			ID:         id,
			Title:      title,
			Scrollable: true,
			Sections:   []SectionConfig{{Label: title, Text: body}},
		}
	}

	return Screen{
		Title: "Help",
		Pages: []PageConfig{
			page("basic", "Basics", text(
				"termnav shows pages of sections in the terminal.",
				"",
				"Pages are picked with the digit keys, sections with the arrows.",
				"Long sections scroll inside their panel.",
			)),
			page("short", "Shortcuts", text(
				"1-6        switch page",
				"up/down    scroll one line",
				"home/end   jump to top/bottom",
				"left/right previous/next section",
				"enter      open the section in the pager",
				"q          quit",
			)),
			page("navi", "Navigation", text(
				"The scrollbar on the right shows where you are.",
				"The panel title shows the visible line range.",
				"",
				"Scrolling stops at the first and last line.",
			)),
			page("feat", "Features", text(
				"  - raw and line input modes",
				"  - CSI and virtual-key keymaps",
				"  - screens defined in config.toml",
				"  - sections read from files",
				"  - full-screen pager for long sections",
			)),
			page("plug", "Plugin guide", pluginGuide()),
			page("plapi", "Plugin API", pluginAPI()),
		},
	}
}

func pluginGuide() string {
	return text(
		"Plugin development guide",
		strings.Repeat("=", 40),
		"",
		"Overview",
		strings.Repeat("-", 30),
		"Plugins extend the menu with new pages and commands.",
		"A plugin can ship several files, binaries and resources.",
		"",
		"Repository name",
		strings.Repeat("-", 30),
		"Plugin repositories are named:",
		"  termnav-plugin-<name>",
		"",
		"Layout",
		strings.Repeat("-", 30),
		"termnav-plugin-<name>/",
		"├── plugin.toml     # entry point and metadata",
		"├── README.md       # usage",
		"├── LICENSE",
		"├── resources/      # optional",
		"└── bin/            # optional",
		"",
		"plugin.toml",
		strings.Repeat("-", 30),
		"  Declares the plugin name, version and the pages it adds.",
		"",
		"Steps",
		strings.Repeat("-", 30),
		"1. Create the directory layout",
		"2. Describe the pages in plugin.toml",
		"3. Add section files under resources/",
		"4. Copy the directory into the plugins folder",
		"",
		"Example",
		strings.Repeat("-", 30),
		"[[pages]]",
		"id = \"deploy\"",
		"title = \"Deploy\"",
		"",
		"[[pages.sections]]",
		"label = \"Targets\"",
		"file = \"resources/targets.txt\"",
		"",
		"Testing",
		strings.Repeat("-", 30),
		"Load the plugin with --config and walk every page.",
		"Sections that fail to load show the read error in place.",
	)
}

func pluginAPI() string {
	return text(
		"Plugin API",
		strings.Repeat("=", 40),
		"",
		"Overview",
		strings.Repeat("-", 30),
		"A plugin contributes screens, pages and sections.",
		"",
		"Screen",
		strings.Repeat("-", 30),
		"  title    string",
		"  pages    list of pages, at most 9",
		"",
		"Page",
		strings.Repeat("-", 30),
		"  id          string, unique within the screen",
		"  title       string, defaults to id",
		"  scrollable  bool, arrows scroll instead of moving sections",
		"  sections    list of sections, at least one",
		"",
		"Section",
		strings.Repeat("-", 30),
		"  label   string",
		"  text    inline content",
		"  file    content file, relative to the config file",
		"",
		"Events",
		strings.Repeat("-", 30),
		"  PageChanged       a digit selected another page",
		"  SectionChanged    the section cursor moved",
		"  SectionConfirmed  enter was pressed on a section",
		"  ViewportScrolled  a section scrolled",
		"  QuitRequested     q was pressed",
		"",
		"Errors",
		strings.Repeat("-", 30),
		"  A page without sections is rejected when the config loads.",
		"  A screen without pages is rejected when the config loads.",
		"  An unreadable section file shows the error as its content.",
	)
}
