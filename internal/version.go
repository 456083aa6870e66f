package internal

// Version is the current gamestrings release.
const Version = "0.4.2"
