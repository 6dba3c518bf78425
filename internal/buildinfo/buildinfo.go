package buildinfo

const Graffiti = " _                                 \n(_)_ __ ___   __ ___   _____  ___ \n| | '_ ` _ \\ / _` \\ \\ / / _ \\/ __|\n| | | | | | | (_| |\\ V /  __/ (__ \n|_|_| |_| |_|\\__, | \\_/ \\___|\\___|\n             |___/                \n\n"

// Overridden at build time with -ldflags "-X".
var (
	BuildTag string = "v0.0.0"
	Name     string = "IMGVEC"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo

func UserAgent() string {
	return Info.Name() + "/" + Info.Tag()
}
