// Package deps installs the project's declared dependencies into its
// environment. The dependency list file is handed to the installer verbatim;
// the reader in this package exists only for diagnostics.
package deps
