package components

const (
	IconAlertTriangle IconName = "triangle-alert"
	IconArrowRight    IconName = "arrow-right"
	IconBell          IconName = "bell"
	IconBlocks        IconName = "blocks"
	IconCheck         IconName = "check"
	IconCode          IconName = "code"
	IconComponent     IconName = "component"
	IconDatabase      IconName = "database"
	IconFileCode      IconName = "file-code"
	IconFileText      IconName = "file-text"
	IconFlower        IconName = "flower"
	IconGitBranch     IconName = "git-branch"
	IconGithub        IconName = "github"
	IconMoon          IconName = "moon"
	IconPalette       IconName = "palette"
	IconRocket        IconName = "rocket"
	IconSearch        IconName = "search"
	IconSparkles      IconName = "sparkles"
	IconType          IconName = "type"
	IconZap           IconName = "zap"
)

// iconShapes holds the 24x24 outline geometry of each icon
var iconShapes = map[IconName][]shape{
	IconAlertTriangle: {
		path("m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3"),
		path("M12 9v4"),
		path("M12 17h.01"),
	},
	IconArrowRight: {
		path("M5 12h14"),
		path("m12 5 7 7-7 7"),
	},
	IconBell: {
		path("M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"),
		path("M10.3 21a1.94 1.94 0 0 0 3.4 0"),
	},
	IconBlocks: {
		{"rect", map[string]string{"width": "7", "height": "7", "x": "14", "y": "3", "rx": "1"}},
		path("M10 21V8a1 1 0 0 0-1-1H4a1 1 0 0 0-1 1v12a1 1 0 0 0 1 1h12a1 1 0 0 0 1-1v-5a1 1 0 0 0-1-1H3"),
	},
	IconCheck: {
		path("M20 6 9 17l-5-5"),
	},
	IconCode: {
		polyline("16 18 22 12 16 6"),
		polyline("8 6 2 12 8 18"),
	},
	IconComponent: {
		path("M5.5 8.5 9 12l-3.5 3.5L2 12l3.5-3.5Z"),
		path("m12 2 3.5 3.5L12 9 8.5 5.5 12 2Z"),
		path("M18.5 8.5 22 12l-3.5 3.5L15 12l3.5-3.5Z"),
		path("m12 15 3.5 3.5L12 22l-3.5-3.5L12 15Z"),
	},
	IconDatabase: {
		{"ellipse", map[string]string{"cx": "12", "cy": "5", "rx": "9", "ry": "3"}},
		path("M3 5V19A9 3 0 0 0 21 19V5"),
		path("M3 12A9 3 0 0 0 21 12"),
	},
	IconFileCode: {
		path("M10 12.5 8 15l2 2.5"),
		path("m14 12.5 2 2.5-2 2.5"),
		path("M14 2v4a2 2 0 0 0 2 2h4"),
		path("M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7z"),
	},
	IconFileText: {
		path("M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"),
		path("M14 2v4a2 2 0 0 0 2 2h4"),
		path("M10 9H8"),
		path("M16 13H8"),
		path("M16 17H8"),
	},
	IconFlower: {
		circle("12", "12", "3"),
		path("M12 16.5A4.5 4.5 0 1 1 7.5 12 4.5 4.5 0 1 1 12 7.5a4.5 4.5 0 1 1 4.5 4.5 4.5 4.5 0 1 1-4.5 4.5"),
		path("M12 7.5V9"),
		path("M7.5 12H9"),
		path("M16.5 12H15"),
		path("M12 16.5V15"),
		path("m8 8 1.88 1.88"),
		path("M14.12 9.88 16 8"),
		path("m8 16 1.88-1.88"),
		path("M14.12 14.12 16 16"),
	},
	IconGitBranch: {
		line("6", "6", "3", "15"),
		circle("18", "6", "3"),
		circle("6", "18", "3"),
		path("M18 9a9 9 0 0 1-9 9"),
	},
	IconGithub: {
		path("M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"),
		path("M9 18c-4.51 2-5-2-7-2"),
	},
	IconMoon: {
		path("M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"),
	},
	IconPalette: {
		{"circle", map[string]string{"cx": "13.5", "cy": "6.5", "r": ".5", "fill": "currentColor"}},
		{"circle", map[string]string{"cx": "17.5", "cy": "10.5", "r": ".5", "fill": "currentColor"}},
		{"circle", map[string]string{"cx": "8.5", "cy": "7.5", "r": ".5", "fill": "currentColor"}},
		{"circle", map[string]string{"cx": "6.5", "cy": "12.5", "r": ".5", "fill": "currentColor"}},
		path("M12 2C6.5 2 2 6.5 2 12s4.5 10 10 10c.926 0 1.648-.746 1.648-1.688 0-.437-.18-.835-.437-1.125-.29-.289-.438-.652-.438-1.125a1.64 1.64 0 0 1 1.668-1.668h1.996c3.051 0 5.555-2.503 5.555-5.554C21.965 6.012 17.461 2 12 2z"),
	},
	IconRocket: {
		path("M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"),
		path("m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"),
		path("M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"),
		path("M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"),
	},
	IconSearch: {
		circle("11", "11", "8"),
		path("m21 21-4.3-4.3"),
	},
	IconSparkles: {
		path("M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"),
		path("M20 3v4"),
		path("M22 5h-4"),
		path("M4 17v2"),
		path("M5 18H3"),
	},
	IconType: {
		polyline("4 7 4 4 20 4 20 7"),
		line("9", "15", "20", "20"),
		line("12", "12", "4", "20"),
	},
	IconZap: {
		path("M4 14a1 1 0 0 1-.78-1.63l9.9-10.2a.5.5 0 0 1 .86.46l-1.92 6.02A1 1 0 0 0 13 10h7a1 1 0 0 1 .78 1.63l-9.9 10.2a.5.5 0 0 1-.86-.46l1.92-6.02A1 1 0 0 0 11 14z"),
	},
}
