package version

// goreleaser などで差し替える
var version = "dev"
