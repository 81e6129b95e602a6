package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconConfig   = "" // config
	IconDatabase = "" // database
	IconCursor   = "" // chevron-right

	// Navigation
	IconGamepad = "" // gamepad
	IconRemote  = "" // television
	IconPointer = "" // mouse pointer
	IconFilm    = "" // film
	IconPlay    = "" // play
	IconPause   = "" // pause
	IconStar    = "" // star
)
