// Package environment names the deployment environment and carries it
// through request contexts so handlers can decide, for example, whether error
// details may be shown to the visitor.
package environment
