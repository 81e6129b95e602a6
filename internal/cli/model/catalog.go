// Package model provides Bubble Tea models for the remotenav CLI.
package model

// Channel is a live channel listed in the rail.
type Channel struct {
	Slug   string
	Name   string
	Number int
}

// Title is a movie or series shown on a carousel tile.
type Title struct {
	Slug      string
	Name      string
	Year      int
	Subtitles bool
}

// Shelf is one horizontally scrolling carousel row.
type Shelf struct {
	Slug   string
	Name   string
	Titles []Title
	// Upcoming shelves list titles that cannot be played yet.
	Upcoming bool
}

// Catalog is the demo content of the TV shell.
type Catalog struct {
	Channels []Channel
	Shelves  []Shelf
}

// DemoCatalog returns the built-in catalog used by `remotenav demo`.
func DemoCatalog() Catalog {
	return Catalog{
		Channels: []Channel{
			{Slug: "news24", Name: "News 24", Number: 1},
			{Slug: "sport", Name: "Sport Live", Number: 2},
			{Slug: "cinema", Name: "Cinema+", Number: 3},
			{Slug: "kids", Name: "Kids Zone", Number: 4},
			{Slug: "docs", Name: "Discovery", Number: 5},
			{Slug: "music", Name: "Music Hits", Number: 6},
			{Slug: "retro", Name: "Retro TV", Number: 7},
			{Slug: "local", Name: "Local 8", Number: 8},
		},
		Shelves: []Shelf{
			{Slug: "trending", Name: "Trending now", Titles: []Title{
				{Slug: "dune-2", Name: "Dune: Part Two", Year: 2024, Subtitles: true},
				{Slug: "oppenheimer", Name: "Oppenheimer", Year: 2023, Subtitles: true},
				{Slug: "past-lives", Name: "Past Lives", Year: 2023, Subtitles: true},
				{Slug: "the-holdovers", Name: "The Holdovers", Year: 2023},
				{Slug: "anatomy-fall", Name: "Anatomy of a Fall", Year: 2023, Subtitles: true},
				{Slug: "poor-things", Name: "Poor Things", Year: 2023},
				{Slug: "killers-moon", Name: "Killers of the Flower Moon", Year: 2023},
				{Slug: "perfect-days", Name: "Perfect Days", Year: 2023, Subtitles: true},
				{Slug: "zone-interest", Name: "The Zone of Interest", Year: 2023, Subtitles: true},
				{Slug: "godzilla-minus", Name: "Godzilla Minus One", Year: 2023, Subtitles: true},
			}},
			{Slug: "movies", Name: "Movies", Titles: []Title{
				{Slug: "heat", Name: "Heat", Year: 1995},
				{Slug: "alien", Name: "Alien", Year: 1979, Subtitles: true},
				{Slug: "arrival", Name: "Arrival", Year: 2016, Subtitles: true},
				{Slug: "drive", Name: "Drive", Year: 2011},
				{Slug: "parasite", Name: "Parasite", Year: 2019, Subtitles: true},
				{Slug: "spirited-away", Name: "Spirited Away", Year: 2001, Subtitles: true},
				{Slug: "amelie", Name: "Amélie", Year: 2001, Subtitles: true},
				{Slug: "the-thing", Name: "The Thing", Year: 1982},
				{Slug: "zodiac", Name: "Zodiac", Year: 2007},
				{Slug: "the-matrix", Name: "The Matrix", Year: 1999, Subtitles: true},
				{Slug: "fargo", Name: "Fargo", Year: 1996},
				{Slug: "seven-samurai", Name: "Seven Samurai", Year: 1954, Subtitles: true},
			}},
			{Slug: "series", Name: "Series", Titles: []Title{
				{Slug: "the-wire", Name: "The Wire", Year: 2002},
				{Slug: "dark", Name: "Dark", Year: 2017, Subtitles: true},
				{Slug: "severance", Name: "Severance", Year: 2022, Subtitles: true},
				{Slug: "the-bear", Name: "The Bear", Year: 2022},
				{Slug: "shogun", Name: "Shōgun", Year: 2024, Subtitles: true},
				{Slug: "succession", Name: "Succession", Year: 2018},
				{Slug: "fleabag", Name: "Fleabag", Year: 2016},
				{Slug: "chernobyl", Name: "Chernobyl", Year: 2019, Subtitles: true},
			}},
			{Slug: "soon", Name: "Coming soon", Upcoming: true, Titles: []Title{
				{Slug: "project-hail-mary", Name: "Project Hail Mary", Year: 2026},
				{Slug: "the-odyssey", Name: "The Odyssey", Year: 2026},
				{Slug: "dune-messiah", Name: "Dune: Messiah", Year: 2026},
				{Slug: "avengers-doomsday", Name: "Avengers: Doomsday", Year: 2026},
			}},
		},
	}
}

// title finds a title by slug across every shelf.
func (c Catalog) title(slug string) (Title, bool) {
	for _, shelf := range c.Shelves {
		for _, t := range shelf.Titles {
			if t.Slug == slug {
				return t, true
			}
		}
	}
	return Title{}, false
}

func (c Catalog) channel(slug string) (Channel, bool) {
	for _, ch := range c.Channels {
		if ch.Slug == slug {
			return ch, true
		}
	}
	return Channel{}, false
}

// related returns the titles shown under the player.
func (c Catalog) related(slug string) []Title {
	for _, shelf := range c.Shelves {
		if shelf.Upcoming {
			continue
		}
		for _, t := range shelf.Titles {
			if t.Slug == slug {
				out := make([]Title, 0, len(shelf.Titles)-1)
				for _, other := range shelf.Titles {
					if other.Slug != slug {
						out = append(out, other)
					}
				}
				return out
			}
		}
	}
	if len(c.Shelves) > 0 {
		return c.Shelves[0].Titles
	}
	return nil
}
