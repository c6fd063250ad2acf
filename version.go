package rlox

// Version and BuildDate are shown by the CLI banner. BuildDate can be
// overridden at link time with -ldflags "-X ...".
var (
	Version   = "0.2.0"
	BuildDate = "unknown"
)
