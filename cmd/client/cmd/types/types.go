package types

type contextKey string

// ClientAppKey is the context key the root command stores the application
// under for subcommands.
const ClientAppKey contextKey = "clientApp"
