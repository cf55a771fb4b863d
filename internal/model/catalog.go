package model

// EntryTitles is the fixed, ordered catalog of checklist items. The list is
// recreated wholesale on reset; individual entries are never added or removed.
var EntryTitles = []string{
	"Clear your desk surface",
	"Empty the inbox to zero",
	"Review tomorrow's calendar",
	"Write down three priorities",
	"Close every browser tab",
	"File loose papers",
	"Wipe down your keyboard",
	"Refill the water bottle",
	"Stretch for two minutes",
	"Archive finished projects",
	"Silence non-urgent notifications",
	"Tidy the download folder",
	"Note one thing that went well",
	"Plan the first task of tomorrow",
	"Put chargers back in place",
	"Take a slow breath before leaving",
}

// InsightPool holds the advisory strings assigned at random (with replacement)
// to entries on each initialization.
var InsightPool = []string{
	"Small resets keep momentum going.",
	"A clear space lowers the cost of starting.",
	"Future you will thank present you.",
	"Done is a direction, not a destination.",
	"Friction removed tonight is focus gained tomorrow.",
	"Tiny rituals beat big resolutions.",
	"What gets parked deliberately never gets lost.",
	"Ending well is how you start well.",
	"One visible win invites the next one.",
	"Order outside, calm inside.",
}
