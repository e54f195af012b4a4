package version

// Version is the agent release string.
const Version = "0.1.0"
