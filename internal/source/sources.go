package source

// Mode selects how a source's items render: stacked rows for mods and maps,
// grouped article cards for blog and wiki.
type Mode int

const (
	ModeItems Mode = iota
	ModeArticles
)

// Source names one of the fixed JSON catalogs.
type Source struct {
	Name         string // logical name used on the command line and in prefs
	File         string // JSON document fetched from the data root
	Title        string // hero/branding line shown in the header
	DefaultGroup string // article-mode fallback group label
	Mode         Mode
}

// Articles reports whether the source renders in article mode.
func (s Source) Articles() bool { return s.Mode == ModeArticles }

// All lists the fixed catalogs in navigation order.
var All = []Source{
	{Name: "mods", File: "modlist.json", Title: "HYTESERVE MODS", Mode: ModeItems},
	{Name: "maps", File: "maplist.json", Title: "HYTESERVE CUSTOM MAPS", Mode: ModeItems},
	{Name: "blog", File: "bloglist.json", Title: "HYTESERVE DEV BLOG", Mode: ModeArticles, DefaultGroup: "Recent Updates"},
	{Name: "wiki", File: "wikihytale.json", Title: "HYTESERVE KNOWLEDGE WIKI", Mode: ModeArticles, DefaultGroup: "General"},
}

// ByName looks up a source by its logical name.
func ByName(name string) (Source, bool) {
	for _, s := range All {
		if s.Name == name {
			return s, true
		}
	}
	return Source{}, false
}

// ByFile looks up a source by its JSON file name.
func ByFile(file string) (Source, bool) {
	for _, s := range All {
		if s.File == file {
			return s, true
		}
	}
	return Source{}, false
}

// Default is the source shown when nothing else is requested.
func Default() Source { return All[0] }
