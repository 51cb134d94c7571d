package ui

//nolint:gochecknoglobals // Test-only exports
var (
	RenderLocation = renderLocation
	RenderStatus   = renderStatus
	FormatBytes    = formatBytes
)
