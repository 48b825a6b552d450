// Package bootstrap runs the environment setup sequence: interpreter
// discovery, environment creation, working directory ensure and dependency
// installation. Steps run strictly in order and the first failure aborts the
// rest; every failure is reported as an *Error carrying one of three kinds.
package bootstrap
