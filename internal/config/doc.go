// Package config loads the project-level pyboot.yaml that sits at the project
// root. It applies defaults for every key, validates the file against an
// embedded JSON schema before decoding it, and renders the effective
// configuration back to YAML for the init and config commands.
package config
