package types

// Version is the service version. Overwritten at build time with -ldflags.
var Version = "dev"

// DefaultChangelogEmail is used in .changes headers when no contact is configured
const DefaultChangelogEmail = "obs-service-renderspec@localhost"
