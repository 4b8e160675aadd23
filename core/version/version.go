package version

// Version is the current remap release.
const Version = "v0.1.0"
