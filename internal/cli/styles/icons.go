package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFolder   = "\uf07b" // folder
	IconTab      = "\uf0ce" // table
	IconPane     = "\uf0db" // columns
	IconTree     = "\uf1bb" // tree
	IconWindow   = "\uf2d2" // window
	IconSearch   = "\uf002" // search
	IconCursor   = "\uf054" // chevron-right

	IconVersion   = "\uf412" // tag
	IconGitBranch = "\ue725" // git-branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go
	IconGithub    = "\uf09b" // github
)
