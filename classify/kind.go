package classify

import "strings"

// Kind routes a source page to its extraction pipeline.
type Kind string

// Page kinds recognized by PageKind.
const (
	KindLyrics        Kind = "lyrics"
	KindAlbum         Kind = "album"
	KindSingle        Kind = "single"
	KindCollaboration Kind = "collaboration"
	KindHomepage      Kind = "homepage"
	KindLive          Kind = "live"
	KindVarious       Kind = "various_artist"
	KindOther         Kind = "other_artist"
	KindItems         Kind = "items"
	KindPage          Kind = "page"
)

// pageKindRules is ordered: lyrics pages win even when the filename
// also mentions an album or artist keyword.
var pageKindRules = []Rule{
	{Category: string(KindLyrics), Keywords: []string{"lyric"}},
	{Category: string(KindAlbum), Keywords: []string{"album"}},
	{Category: string(KindSingle), Keywords: []string{"single"}},
	{Category: string(KindCollaboration), Keywords: []string{"tcl"}},
	{Category: string(KindLive), Keywords: []string{"live"}},
	{Category: string(KindVarious), Keywords: []string{"various"}},
	{Category: string(KindOther), Keywords: []string{"other"}},
	{Category: string(KindItems), Keywords: []string{"items"}},
}

// PageKind determines how a source page should be processed based on
// its filename.
func PageKind(filename string) Kind {
	name := strings.ToLower(filename)
	if name == "index.html" {
		return KindHomepage
	}
	if cat, ok := FirstMatch(pageKindRules, name); ok {
		return Kind(cat)
	}
	return KindPage
}
