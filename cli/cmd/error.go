package cmd

import "github.com/ardnew/vinv/sshcfg"

// Predefined errors (sentinel values).
var (
	ErrHostNotFound = sshcfg.NewError("host not found")
	ErrJSONMarshal  = sshcfg.NewError("marshal JSON")
	ErrYAMLMarshal  = sshcfg.NewError("marshal YAML")
	ErrBrowse       = sshcfg.NewError("interactive browser failed")
)
