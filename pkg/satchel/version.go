package satchel

// Version is the satchel module version, printed by the CLI.
const Version = "0.1.0"
