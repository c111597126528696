package cli

var (
	IsUsageError  = isUsageError
	FlagToEnvName = flagToEnvName
)
