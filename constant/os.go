package constant

// runtime.GOOS values that open knows how to launch a browser on.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
