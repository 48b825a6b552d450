// Package project resolves the project root and the directory layout that the
// bootstrapper manages beneath it: the virtual environment, the scratch and
// output working directories, and the dependency list file.
package project
