package displayname

// forbiddenWords are substrings a display name may never contain, matched
// case-insensitively. Mostly role or authority impersonation terms.
var forbiddenWords = []string{
	"admin",
	"moderator",
	"support",
	"null",
	"undefined",
	"system",
	"root",
	"god",
	"master",
	"slave",
	"owner",
	"bot",
	"server",
	"host",
	"developer",
	"operator",

	"user",
	"guest",
	"anonymous",
	"unknown",
	"default",
	"placeholder",
	"sample",
	"demo",

	"ceo",
	"cto",
	"manager",
	"director",
	"president",
	"leader",
	"chief",
	"officer",
	"executive",
	"founder",
}
