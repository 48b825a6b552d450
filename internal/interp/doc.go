// Package interp discovers the Python interpreter used to create the project
// environment. Candidates are probed on PATH in order and the first match
// wins; an optional semver constraint is then checked against the version the
// interpreter reports.
package interp
